package srec

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	asmlio "github.com/ezrec/asml/io"
)

func TestRecord_Checksum(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name     string
		record   Record
		checksum byte
	}{
		{"header", Record{RECORD_HEADER, 0x0000, []byte{
			0x68, 0x65, 0x6C, 0x6C, 0x6F, 0x20, 0x20, 0x20, 0x20, 0x20, 0x00, 0x00}}, 0x3C},
		{"data16_1", Record{RECORD_DATA16, 0x0038, []byte{
			0x48, 0x65, 0x6C, 0x6C, 0x6F, 0x20, 0x77, 0x6F, 0x72, 0x6C, 0x64, 0x2E, 0x0A, 0x00}}, 0x42},
		{"data16_2", Record{RECORD_DATA16, 0x0000, []byte{
			0x7C, 0x08, 0x02, 0xA6, 0x90, 0x01, 0x00, 0x04, 0x94, 0x21, 0xFF, 0xF0, 0x7C, 0x6C,
			0x1B, 0x78, 0x7C, 0x8C, 0x23, 0x78, 0x3C, 0x60, 0x00, 0x00, 0x38, 0x63, 0x00, 0x00}}, 0x26},
		{"count16", Record{RECORD_COUNT16, 0x0003, nil}, 0xF9},
		{"start16", Record{RECORD_START16, 0x0000, nil}, 0xFC},
	}

	for _, entry := range table {
		assert.Equal(entry.checksum, entry.record.Checksum(), entry.name)

		rec, err := ParseRecord(entry.record.String())
		assert.NoError(err, entry.name)
		assert.Equal(entry.record.Type, rec.Type, entry.name)
		assert.Equal(entry.record.Address, rec.Address, entry.name)
		assert.Equal(len(entry.record.Data), len(rec.Data), entry.name)
	}

	assert.Equal("S00F000068656C6C6F202020202000003C", table[0].record.String())
}

func TestEncode(t *testing.T) {
	assert := assert.New(t)

	rom := asmlio.NewRom()
	assert.NoError(rom.Store(0xFFFE, 0x00, 0x00))
	assert.NoError(rom.Store(0x0000, 0x19, 0x01, 0x00, 0x03))

	out := &bytes.Buffer{}
	assert.NoError(Encode(out, rom, ""))
	assert.Equal(strings.Join([]string{
		"S007000041534D4CCB",
		"S107000019010003DB",
		"S105FFFE0000FD",
		"S5030002FA",
		"S9030000FC",
		"",
	}, "\n"), out.String())
}

func TestEncode_Split(t *testing.T) {
	assert := assert.New(t)

	data := make([]byte, 600)
	for n := range data {
		data[n] = byte(n)
	}

	rom := asmlio.NewRom()
	assert.NoError(rom.Store(0x1000, data...))
	assert.NoError(rom.Store(0x2000, 0xAA))

	records := Records(rom, "test")
	assert.Equal(7, len(records))

	assert.Equal(RECORD_HEADER, records[0].Type)
	assert.Equal([]byte("test"), records[0].Data)

	assert.Equal(uint32(0x1000), records[1].Address)
	assert.Equal(DATA_MAX, len(records[1].Data))
	assert.Equal(uint32(0x1000+DATA_MAX), records[2].Address)
	assert.Equal(uint32(0x1000+2*DATA_MAX), records[3].Address)
	assert.Equal(600-2*DATA_MAX, len(records[3].Data))
	assert.Equal(uint32(0x2000), records[4].Address)
	assert.Equal(255, records[1].ByteCount())

	assert.Equal(Record{Type: RECORD_COUNT16, Address: 4}, records[5])
	assert.Equal(Record{Type: RECORD_START16, Address: 0x1000}, records[6])
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rom := asmlio.NewRom()
	assert.NoError(rom.Store(0x0000, 0x19, 0x01, 0x00, 0x03, 0x12))
	assert.NoError(rom.Store(0x0100, bytes.Repeat([]byte{0x5A}, 300)...))
	assert.NoError(rom.Store(0xFFFD, 0x00, 0x01, 0x00))

	out := &bytes.Buffer{}
	assert.NoError(Encode(out, rom, "round"))

	decoded, err := Decode(out)
	assert.NoError(err)
	assert.True(rom.Equal(decoded))

	empty := &bytes.Buffer{}
	assert.NoError(Encode(empty, asmlio.NewRom(), ""))
	decoded, err = Decode(empty)
	assert.NoError(err)
	assert.Equal(0, decoded.Len())
}

func TestDecode_Malformed(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		lines  []string
		lineno int
		target error
	}{
		{"checksum", []string{"S007000041534D4CCB", "S107000019010003DC"}, 2, ErrChecksum},
		{"start", []string{"", "X107000019010003DB"}, 2, ErrRecordStart},
		{"type", []string{"S407000019010003DB"}, 1, ErrRecordType},
		{"s3", []string{"S30800000000190100DD"}, 1, ErrRecordType},
		{"hex", []string{"S1070000190100G3DB"}, 1, ErrRecordHex},
		{"odd", []string{"S107000019010003D"}, 1, ErrRecordHex},
		{"bytecount", []string{"S108000019010003DB"}, 1, ErrByteCount},
		{"truncated", []string{"S102FF"}, 1, ErrTruncated},
		{"count", []string{"S107000019010003DB", "S5030002FA"}, 2, ErrCount},
		{"overlap", []string{"S107000019010003DB", "S107000019010003DB"}, 2, asmlio.ErrRomOverlap(0)},
	}

	for _, entry := range table {
		rom, err := Decode(strings.NewReader(strings.Join(entry.lines, "\n")))
		assert.Nil(rom, entry.name)
		assert.True(errors.Is(err, ErrMalformedRecord{}), entry.name)
		assert.True(errors.Is(err, entry.target), "%v: %v", entry.name, err)

		var malformed ErrMalformedRecord
		if assert.True(errors.As(err, &malformed), entry.name) {
			assert.Equal(entry.lineno, malformed.LineNo, entry.name)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add("S007000041534D4CCB\nS107000019010003DB\nS105FFFE0000FD\nS5030002FA\nS9030000FC\n")
	f.Add("S1FF")
	f.Add("S5030000FC")

	f.Fuzz(func(t *testing.T, text string) {
		assert := assert.New(t)

		rom, err := Decode(strings.NewReader(text))
		if err != nil {
			assert.True(errors.Is(err, ErrMalformedRecord{}))
			return
		}

		out := &bytes.Buffer{}
		assert.NoError(Encode(out, rom, ""))

		again, err := Decode(out)
		assert.NoError(err)
		assert.True(rom.Equal(again))
	})
}
