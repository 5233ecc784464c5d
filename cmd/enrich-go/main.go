// cmd/enrich-go/main.go
package main

import (
	"enrich/internal/appshell"
	"enrich/internal/goapp"
)

func main() { appshell.Main(goapp.RunContext) }
