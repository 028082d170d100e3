package main

import (
	"github.com/omics-cicd/release-automation/linters/errorsnew"
	"golang.org/x/tools/go/analysis"
)

// New is the golangci-lint module plugin entrypoint.
func New(_ any) ([]*analysis.Analyzer, error) {
	return []*analysis.Analyzer{errorsnew.Analyzer}, nil
}
