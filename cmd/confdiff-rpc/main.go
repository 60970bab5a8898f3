// Command confdiff-rpc serves comparisons over JSON-RPC 2.0 on
// stdio.  It is a thin transport: requests are decoded, handed to the
// confdiff core, and the result object is returned verbatim.
package main

import (
	"context"
	"io"
	"os"

	"go.lsp.dev/jsonrpc2"
)

const rpcName = "confdiff-rpc"

var version = "0.1.0"

func main() {
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	conn := jsonrpc2.NewConn(stream)
	conn.Go(ctx, handle)
	<-conn.Done()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}
