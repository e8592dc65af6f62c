package merkle

import (
	"bytes"
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// proofNodesField is the protobuf field number of the repeated bytes field
// holding the proof nodes, in order.
const proofNodesField protowire.Number = 1

// MarshalBinary encodes the proof as a protobuf message with one repeated
// bytes field.
func (p Proof) MarshalBinary() ([]byte, error) {
	var size int
	for _, node := range p {
		size += protowire.SizeTag(proofNodesField) + protowire.SizeBytes(len(node))
	}

	b := make([]byte, 0, size)
	for _, node := range p {
		b = protowire.AppendTag(b, proofNodesField, protowire.BytesType)
		b = protowire.AppendBytes(b, node)
	}
	return b, nil
}

// UnmarshalBinary decodes a proof written by MarshalBinary.
// Unknown fields are skipped.
func (p *Proof) UnmarshalBinary(data []byte) error {
	nodes := Proof{}
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			return fmt.Errorf("%w: tag: %v", ErrMalformedProof, protowire.ParseError(n))
		}
		data = data[n:]

		if num != proofNodesField || typ != protowire.BytesType {
			n = protowire.ConsumeFieldValue(num, typ, data)
			if n < 0 {
				return fmt.Errorf("%w: field %d: %v", ErrMalformedProof, num, protowire.ParseError(n))
			}
			data = data[n:]
			continue
		}

		node, n := protowire.ConsumeBytes(data)
		if n < 0 {
			return fmt.Errorf("%w: node %d: %v", ErrMalformedProof, len(nodes), protowire.ParseError(n))
		}
		nodes = append(nodes, bytes.Clone(node))
		data = data[n:]
	}

	*p = nodes
	return nil
}
