package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.lsp.dev/jsonrpc2"

	"github.com/confkit/confdiff"
	"github.com/confkit/confdiff/debug"
	"github.com/confkit/confdiff/format"
	"github.com/confkit/confdiff/parse"
)

// CompareRequest is the wire shape of the "compare" method params.
type CompareRequest struct {
	SourceContent string   `json:"source_content"`
	TargetContent string   `json:"target_content"`
	Format        string   `json:"format"`
	IgnoreKeys    []string `json:"ignore_keys,omitempty"`
	Strict        *bool    `json:"strict,omitempty"`
}

func handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	if debug.RPC() {
		debug.Logf("%s: <- %s\n", rpcName, req.Method())
	}
	switch req.Method() {
	case "compare":
		var params CompareRequest
		if err := json.Unmarshal(req.Params(), &params); err != nil {
			return reply(ctx, nil,
				jsonrpc2.Errorf(jsonrpc2.InvalidParams, "invalid compare params: %v", err))
		}
		res, err := doCompare(&params)
		if err != nil {
			return reply(ctx, nil, err)
		}
		return reply(ctx, res, nil)
	case "formats":
		var names []string
		for _, f := range format.AllFormats() {
			names = append(names, f.String())
		}
		return reply(ctx, names, nil)
	case "version":
		return reply(ctx, map[string]string{"name": rpcName, "version": version}, nil)
	default:
		return reply(ctx, nil, jsonrpc2.ErrMethodNotFound)
	}
}

func doCompare(params *CompareRequest) (*confdiff.Result, error) {
	// unsupported formats are rejected here; the core only ever sees
	// the three known literals
	f, err := format.ParseFormat(strings.ToLower(params.Format))
	if err != nil {
		return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams,
			"Unsupported format: %s", params.Format)
	}
	strict := true
	if params.Strict != nil {
		strict = *params.Strict
	}
	res, err := confdiff.Compare(
		strings.TrimSpace(params.SourceContent),
		strings.TrimSpace(params.TargetContent),
		f,
		confdiff.IgnoreKeys(params.IgnoreKeys...),
		confdiff.Strict(strict),
	)
	if err != nil {
		var pe *parse.ParseError
		if errors.As(err, &pe) {
			return nil, jsonrpc2.Errorf(jsonrpc2.InvalidParams,
				"Invalid %s format: %v", strings.ToUpper(pe.Format.String()), pe.Err)
		}
		err = fmt.Errorf("%w: %v", confdiff.ErrInternal, err)
		return nil, jsonrpc2.Errorf(jsonrpc2.InternalError, "Comparison failed: %v", err)
	}
	return res, nil
}
