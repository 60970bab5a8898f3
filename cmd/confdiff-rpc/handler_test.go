package main

import (
	"errors"
	"strings"
	"testing"

	"go.lsp.dev/jsonrpc2"
)

func TestDoCompare(t *testing.T) {
	res, err := doCompare(&CompareRequest{
		SourceContent: `  {"a": 1}  `,
		TargetContent: `{"a": 2}`,
		Format:        "JSON",
	})
	if err != nil {
		t.Fatal(err)
	}
	if res.Summary.Modifications != 1 {
		t.Errorf("bad summary: %+v", res.Summary)
	}
}

func TestDoCompareStrictDefault(t *testing.T) {
	req := &CompareRequest{
		SourceContent: `{"xs": [1, 2]}`,
		TargetContent: `{"xs": [2, 1]}`,
		Format:        "json",
	}
	res, err := doCompare(req)
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasChanges() {
		t.Error("strict should default to true")
	}

	lenient := false
	req.Strict = &lenient
	res, err = doCompare(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.HasChanges() {
		t.Errorf("lenient reorder should be equal: %+v", res.Diff)
	}
}

func TestDoCompareUnsupportedFormat(t *testing.T) {
	_, err := doCompare(&CompareRequest{Format: "toml"})
	if err == nil {
		t.Fatal("expected error")
	}
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.InvalidParams {
		t.Fatalf("expected invalid params, got %v", err)
	}
	if !strings.Contains(rpcErr.Message, "Unsupported format: toml") {
		t.Errorf("bad message: %q", rpcErr.Message)
	}
}

func TestDoCompareParseFailure(t *testing.T) {
	_, err := doCompare(&CompareRequest{
		SourceContent: `{"a":`,
		TargetContent: `{}`,
		Format:        "json",
	})
	if err == nil {
		t.Fatal("expected error")
	}
	var rpcErr *jsonrpc2.Error
	if !errors.As(err, &rpcErr) || rpcErr.Code != jsonrpc2.InvalidParams {
		t.Fatalf("expected invalid params, got %v", err)
	}
	if !strings.Contains(rpcErr.Message, "Invalid JSON format:") {
		t.Errorf("bad message: %q", rpcErr.Message)
	}
}
