package term

import (
	"os"
	"testing"
)

func TestIsTerminal_PipeIsNot(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()

	if IsTerminal(r.Fd()) {
		t.Error("pipe read end reported as a terminal")
	}
	if IsTerminal(w.Fd()) {
		t.Error("pipe write end reported as a terminal")
	}
}

func TestIsTerminal_RegularFileIsNot(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "term")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if IsTerminal(f.Fd()) {
		t.Error("regular file reported as a terminal")
	}
}
