// Package pdftest builds tiny PDF fixtures for extraction tests.
package pdftest

import (
	"fmt"
	"os"
	"strings"
	"testing"
)

// WriteSample writes a minimal PDF to path with one line of Helvetica text per
// page. The cross-reference table is computed from the actual byte offsets, so
// the file is valid for any standards-following reader.
func WriteSample(t *testing.T, path string, pageTexts []string) {
	t.Helper()

	numPages := len(pageTexts)
	var sb strings.Builder
	offsets := make(map[int]int)

	write := func(s string) { sb.WriteString(s) }
	writeObj := func(num int, body string) {
		offsets[num] = sb.Len()
		write(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", num, body))
	}

	// Object layout: 1 catalog, 2 page tree, 3 shared font,
	// 4..3+n page objects, 4+n..3+2n content streams.
	write("%PDF-1.4\n")

	kids := make([]string, numPages)
	for i := range pageTexts {
		kids[i] = fmt.Sprintf("%d 0 R", 4+i)
	}
	writeObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	writeObj(2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), numPages))
	writeObj(3, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>")

	for i := range pageTexts {
		writeObj(4+i, fmt.Sprintf(
			"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>",
			4+numPages+i))
	}

	escaper := strings.NewReplacer("\\", "\\\\", "(", "\\(", ")", "\\)")
	for i, text := range pageTexts {
		stream := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", escaper.Replace(text))
		writeObj(4+numPages+i, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(stream), stream))
	}

	size := 4 + 2*numPages
	xrefOffset := sb.Len()
	write(fmt.Sprintf("xref\n0 %d\n", size))
	write("0000000000 65535 f \n")
	for num := 1; num < size; num++ {
		write(fmt.Sprintf("%010d 00000 n \n", offsets[num]))
	}
	write(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", size, xrefOffset))

	if err := os.WriteFile(path, []byte(sb.String()), 0o600); err != nil {
		t.Fatalf("failed to write sample pdf: %v", err)
	}
}
