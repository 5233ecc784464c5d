// cmd/enrich-gsea/main.go
package main

import (
	"enrich/internal/appshell"
	"enrich/internal/gseaapp"
)

func main() { appshell.Main(gseaapp.RunContext) }
