package snappy

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/andybalholm/lz77"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/s2"
)

var testConfig = lz77.Config{WindowSize: 4096 + 258, LookaheadSize: 258}

func testData() []byte {
	var b strings.Builder
	for i := 0; i < 300; i++ {
		b.WriteString("Of the Reflexions, Refractions, Inflexions and Colours of Light. ")
		b.WriteString(strings.Repeat("ab", i%7))
		b.WriteByte(byte('0' + i%10))
	}
	return []byte(b.String())
}

func compress(t *testing.T, data []byte, blockSize int) []byte {
	b := new(bytes.Buffer)
	w := NewWriter(b, testConfig)
	if blockSize > 0 {
		w.BlockSize = blockSize
	}
	if _, err := w.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func test(t *testing.T, data []byte, blockSize int) {
	compressed := compress(t, data, blockSize)

	decompressed, err := ioutil.ReadAll(snappy.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("decompressed output doesn't match")
	}

	decompressed, err = ioutil.ReadAll(s2.NewReader(bytes.NewReader(compressed)))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("s2 decompressed output doesn't match")
	}
}

func TestEncode(t *testing.T) {
	test(t, testData(), 0)
}

func TestEncodeSmallBlocks(t *testing.T) {
	test(t, testData(), 1000)
}

func TestEncodeRun(t *testing.T) {
	test(t, bytes.Repeat([]byte{'z'}, 5000), 0)
}

func TestEncodeEmpty(t *testing.T) {
	compressed := compress(t, nil, 0)
	if !bytes.Equal(compressed, magicChunk) {
		t.Fatalf("got %q, want only the stream identifier", compressed)
	}
	test(t, nil, 0)
}

func TestEncodeCompresses(t *testing.T) {
	data := testData()
	compressed := compress(t, data, 0)
	if len(compressed) >= len(data)/2 {
		t.Fatalf("compressed %d bytes to %d", len(data), len(compressed))
	}
}

func TestAppendCopyLengths(t *testing.T) {
	// A block made of one literal and one long self-referential copy
	// exercises every branch of appendCopy.
	for _, n := range []int{4, 11, 12, 64, 65, 67, 68, 200, 1000} {
		src := bytes.Repeat([]byte{'q'}, n+1)
		matches := []lz77.Match{{Unmatched: 1, Length: n, Distance: 1}}
		var e Encoder
		compressed := e.Encode(nil, src, matches, true)
		decompressed, err := ioutil.ReadAll(snappy.NewReader(bytes.NewReader(compressed)))
		if err != nil {
			t.Fatalf("length %d: %v", n, err)
		}
		if !bytes.Equal(decompressed, src) {
			t.Fatalf("length %d: output doesn't match", n)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	b.StopTimer()
	b.ReportAllocs()
	data := testData()

	b.SetBytes(int64(len(data)))
	buf := new(bytes.Buffer)
	w := NewWriter(buf, testConfig)
	w.Write(data)
	w.Close()
	b.ReportMetric(float64(len(data))/float64(buf.Len()), "ratio")
	b.StartTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(data)
		w.Close()
	}
}
