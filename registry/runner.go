// runner.go - Runner: ties a registry entry to its parser and the decoder.
package registry

import (
	"fmt"
	"os"

	"github.com/mfdata/mfcore/codepage"
	"github.com/mfdata/mfcore/copybook"
	"github.com/mfdata/mfcore/decode"
)

// Runner decodes a registry entry's fixed-format data file record by
// record against a layout the caller has already parsed: open file,
// resolve code page, read fixed-width records in sequence. It does not
// read or parse the entry's copybook itself.
type Runner struct {
	Mode decode.Mode
}

// DecodeFile reads the entry's data file in layout.RecordLength-sized
// chunks and decodes each one, stopping at the first error in Strict
// mode. The final partial chunk, if any, is reported as a ShortRecord
// FieldDecodeError rather than silently dropped.
func (r *Runner) DecodeFile(entry *RegistryEntry, layout *copybook.Layout) ([]decode.Record, error) {
	if !entry.IsCopybookBacked() {
		return nil, fmt.Errorf("registry: entry %s has no data_file/copybook pair", entry.Name)
	}

	data, err := os.ReadFile(entry.DataFile)
	if err != nil {
		return nil, fmt.Errorf("registry: reading %s: %w", entry.DataFile, err)
	}

	cp := codepage.Default()
	if entry.CCSID != 0 {
		resolved, _ := codepage.Resolve(entry.CCSID)
		cp = resolved
	}

	width := layout.RecordLength
	if width == 0 {
		return nil, fmt.Errorf("registry: entry %s has a zero-length layout", entry.Name)
	}

	var records []decode.Record
	for offset := 0; offset+width <= len(data); offset += width {
		rec, err := decode.DecodeRecord(layout, data[offset:offset+width], cp, r.Mode)
		if err != nil {
			if r.Mode == decode.Strict {
				return nil, fmt.Errorf("registry: entry %s: record at byte %d: %w", entry.Name, offset, err)
			}
			// Lenient mode: DecodeRecord already returned a usable
			// partial record alongside the *RecordDecodeError.
		}
		records = append(records, rec)
	}

	if rem := len(data) % width; rem != 0 {
		return records, &decode.FieldDecodeError{
			Offset: len(data) - rem,
			Kind:   decode.KindShortRecord,
			Detail: fmt.Sprintf("entry %s: trailing %d bytes do not form a complete record", entry.Name, rem),
		}
	}

	return records, nil
}
