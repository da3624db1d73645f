package ocr

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slipverify/internal/common"
)

// stubRunner fakes the tesseract binary.
type stubRunner struct {
	stdout map[string]string // keyed by last arg ("tsv") or "" for plain runs
	err    error
	calls  [][]string
}

func (s *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	s.calls = append(s.calls, append([]string{name}, args...))
	if s.err != nil {
		return nil, []byte("tesseract exploded"), s.err
	}
	key := ""
	if len(args) > 0 && args[len(args)-1] == "tsv" {
		key = "tsv"
	}
	return []byte(s.stdout[key]), nil, nil
}

func newTestExtractor(t *testing.T, cfg Config, r Runner) *Extractor {
	t.Helper()
	e := NewExtractor(cfg, nil)
	e.runner = r
	return e
}

func TestExtractImage(t *testing.T) {
	stub := &stubRunner{stdout: map[string]string{
		"": "โอนเงินสำเร็จ\r\n140-xxxxxxxx-7315\t\t150.50  บาท\n",
	}}
	e := newTestExtractor(t, Config{}, stub)

	res, err := e.Extract(context.Background(), "/tmp/slip.jpg")
	require.NoError(t, err)
	assert.Equal(t, "โอนเงินสำเร็จ\n140-xxxxxxxx-7315 150.50 บาท", res.Text)
	assert.Equal(t, "tha+eng", res.Language)

	require.Len(t, stub.calls, 1)
	assert.Equal(t, []string{"tesseract", "/tmp/slip.jpg", "stdout", "-l", "tha+eng"}, stub.calls[0])
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newTestExtractor(t, Config{}, &stubRunner{})
	_, err := e.Extract(context.Background(), "/tmp/slip.pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtractRunnerFailure(t *testing.T) {
	e := newTestExtractor(t, Config{}, &stubRunner{err: errors.New("exit status 1")})
	_, err := e.Extract(context.Background(), "/tmp/slip.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrExtraction)
}

func TestExtractTSVConfidence(t *testing.T) {
	// recognized text is numeric on purpose: parsing the text column
	// instead of conf must not go unnoticed
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"5\t1\t1\t1\t1\t1\t0\t0\t10\t10\t90\t150.50",
		"5\t1\t1\t1\t1\t2\t0\t0\t10\t10\t70\tบาท",
		"5\t1\t1\t1\t1\t3\t0\t0\t10\t10\t-1\t",
	}, "\n")
	stub := &stubRunner{stdout: map[string]string{"": "สลิป", "tsv": tsv}}
	e := newTestExtractor(t, Config{EnableTSVConfidence: true}, stub)

	res, err := e.Extract(context.Background(), "/tmp/slip.jpeg")
	require.NoError(t, err)
	assert.InDelta(t, 0.80, res.Confidence, 0.001)
	require.Len(t, stub.calls, 2)
	assert.Equal(t, "tsv", stub.calls[1][len(stub.calls[1])-1])
}

func TestNormalize(t *testing.T) {
	in := "a  b\r\nc\t\td\n\n\n\ne   "
	got := Normalize(in)
	assert.Equal(t, "a b\nc d\n\ne", got)
}
