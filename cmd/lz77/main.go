// Command lz77 encodes files into LZ77 token streams and packs them into
// Snappy or LZ4 containers.
package main

import (
	"os"

	"github.com/golang/glog"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		glog.Errorf("lz77: %v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}
