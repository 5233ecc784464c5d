// cmd/enrich-rank/main.go
package main

import (
	"enrich/internal/appshell"
	"enrich/internal/rankapp"
)

func main() { appshell.Main(rankapp.RunContext) }
