// Package format defines the wire-level constants of the BSDIFF40 patch
// container.
//
// Container layout (all integers 8-byte little-endian, signed-magnitude):
//
//	offset 0   8 bytes  magic "BSDIFF40"
//	offset 8   8 bytes  control block compressed length (must be >= 0)
//	offset 16  8 bytes  diff block compressed length (must be >= 0)
//	offset 24  8 bytes  target length (must be >= 0)
//	offset 32  ...      bzip2(control block), exactly the declared length
//	           ...      bzip2(diff block), exactly the declared length
//	           ...      bzip2(extra block), to end of stream
//
// The decompressed control block is a sequence of 24-byte records, each
// three 8-byte signed-magnitude fields: copy length, insert length, and
// seek delta.
package format

// Magic is the fixed 8-byte tag at offset 0 of every patch container.
const Magic = "BSDIFF40"

// offsets and sizes in the patch container
const (
	HeaderSize        = 32 // fixed header size in bytes (magic + three lengths)
	FieldSize         = 8  // size of one signed-magnitude integer field
	ControlRecordSize = 24 // three FieldSize fields per control record

	ControlLenOffset = 8  // byte offset of the control block length field
	DiffLenOffset    = 16 // byte offset of the diff block length field
	TargetLenOffset  = 24 // byte offset of the target length field
)
