// cmd/enrich-kegg/main.go
package main

import (
	"enrich/internal/appshell"
	"enrich/internal/keggapp"
)

func main() { appshell.Main(keggapp.RunContext) }
