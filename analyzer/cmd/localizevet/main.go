// Command localizevet runs the localizeusage analyzer as a standalone vet
// tool:
//
//	go vet -vettool=$(which localizevet) ./...
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/abiiranathan/localize-usage/analyzer/passes/localizeusage"
)

func main() { singlechecker.Main(localizeusage.Analyzer) }
