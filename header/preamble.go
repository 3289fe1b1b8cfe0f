/*
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package header implements the 8-byte preamble shared by every sketch
// family's serialized image: preLongs, serVer, familyID, a family-specific
// byte, a flags bitfield, and three family-specific trailing bytes. Each
// family builds its own trailing fields on top of this common block.
package header

import (
	"fmt"

	"github.com/streamsketch/streamsketch/memory"
)

// Family identifies which sketch algorithm produced a serialized image.
// Values match the historical on-wire family IDs so that images remain
// self-describing across implementations.
type Family byte

const (
	FamilyQuantiles    Family = 8
	FamilyTheta        Family = 3
	FamilyThetaUnion   Family = 4
	FamilyHLL          Family = 7
	FamilyAlpha        Family = 2 // reserved: legacy alpha-sketch family id, unused by this module
	FamilyCompactTheta Family = 5
)

// Flag bit positions within the preamble's flags byte, shared verbatim
// across families (a family may define further bits of its own past bit 6).
const (
	FlagBigEndian byte = 1 << iota
	FlagReadOnly
	FlagEmpty
	FlagCompact
	FlagOrdered
	FlagDirect
	FlagSingleItem
)

// Byte offsets of the common preamble fields, valid for every family.
const (
	OffsetPreLongs = 0
	OffsetSerVer   = 1
	OffsetFamilyID = 2
	OffsetField3   = 3 // family-specific: lgConfigK, lgK, or reserved
	OffsetFlags    = 4
	OffsetField5   = 5 // family-specific, 3 bytes: seedHash, reserved, ...
	CommonSize     = 8
)

// Preamble is the parsed common 8-byte header.
type Preamble struct {
	PreLongs byte
	SerVer   byte
	FamilyID Family
	Field3   byte
	Flags    byte
}

// Empty reports whether the FlagEmpty bit is set.
func (p Preamble) Empty() bool { return p.Flags&FlagEmpty != 0 }

// Compact reports whether the FlagCompact bit is set.
func (p Preamble) Compact() bool { return p.Flags&FlagCompact != 0 }

// Ordered reports whether the FlagOrdered bit is set.
func (p Preamble) Ordered() bool { return p.Flags&FlagOrdered != 0 }

// SingleItem reports whether the FlagSingleItem bit is set.
func (p Preamble) SingleItem() bool { return p.Flags&FlagSingleItem != 0 }

// Read parses the common preamble out of r at offset 0. It validates the
// endianness bit (must be clear — this codec only ever emits little-endian
// images) but leaves family-specific validation (serVer range, preLongs
// consistency, k bounds, theta range) to the caller.
func Read(r memory.Region) (Preamble, error) {
	if r.Capacity() < CommonSize {
		return Preamble{}, fmt.Errorf("header: region too small for preamble: capacity=%d want>=%d", r.Capacity(), CommonSize)
	}
	p := Preamble{
		PreLongs: r.GetByte(OffsetPreLongs),
		SerVer:   r.GetByte(OffsetSerVer),
		FamilyID: Family(r.GetByte(OffsetFamilyID)),
		Field3:   r.GetByte(OffsetField3),
		Flags:    r.GetByte(OffsetFlags),
	}
	if p.Flags&FlagBigEndian != 0 {
		return Preamble{}, fmt.Errorf("header: big-endian images are not supported")
	}
	if p.PreLongs == 0 {
		return Preamble{}, fmt.Errorf("header: preLongs must be at least 1")
	}
	return p, nil
}

// Write serializes the common preamble into r at offset 0. The
// FlagBigEndian bit is never set by this codec.
func Write(r memory.Region, p Preamble) error {
	if r.Capacity() < CommonSize {
		return fmt.Errorf("header: region too small for preamble: capacity=%d want>=%d", r.Capacity(), CommonSize)
	}
	r.PutByte(OffsetPreLongs, p.PreLongs)
	r.PutByte(OffsetSerVer, p.SerVer)
	r.PutByte(OffsetFamilyID, byte(p.FamilyID))
	r.PutByte(OffsetField3, p.Field3)
	r.PutByte(OffsetFlags, p.Flags&^FlagBigEndian)
	return nil
}

// CheckFamily returns an error unless p.FamilyID == want.
func CheckFamily(p Preamble, want Family) error {
	if p.FamilyID != want {
		return fmt.Errorf("header: family id mismatch: got %d want %d", p.FamilyID, want)
	}
	return nil
}
