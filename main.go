// Command docx2md converts Word documents into Markdown notes.
package main

import "github.com/gaurav-prasanna/docx2md/cmd"

func main() {
	cmd.Execute()
}
