package syntax

import (
	"encoding"
	"fmt"
)

// Kind is the type tag of a syntax tree node. Only the kinds the rules look
// at are named; every other node of the external grammar decodes as KindOther.
type Kind int

const (
	KindInvalid Kind = iota

	KindOther
	KindSourceText
	KindIdentifier

	KindModuleAnsiHeader
	KindModuleIdentifier

	KindSequenceDeclaration
	KindSequenceIdentifier

	KindCheckerDeclaration
	KindCheckerIdentifier

	KindPropertyDeclaration
	KindPropertyIdentifier

	KindHierarchicalInstance
	KindInstanceIdentifier

	KindGenerateBlock
	KindGenerateBlockIdentifier

	KindBinaryOperator

	KindNetTypeWire
	KindIntegerVectorTypeReg
)

var kindValueMap = map[Kind]string{
	KindOther:                   "Other",
	KindSourceText:              "SourceText",
	KindIdentifier:              "Identifier",
	KindModuleAnsiHeader:        "ModuleAnsiHeader",
	KindModuleIdentifier:        "ModuleIdentifier",
	KindSequenceDeclaration:     "SequenceDeclaration",
	KindSequenceIdentifier:      "SequenceIdentifier",
	KindCheckerDeclaration:      "CheckerDeclaration",
	KindCheckerIdentifier:       "CheckerIdentifier",
	KindPropertyDeclaration:     "PropertyDeclaration",
	KindPropertyIdentifier:      "PropertyIdentifier",
	KindHierarchicalInstance:    "HierarchicalInstance",
	KindInstanceIdentifier:      "InstanceIdentifier",
	KindGenerateBlock:           "GenerateBlock",
	KindGenerateBlockIdentifier: "GenerateBlockIdentifier",
	KindBinaryOperator:          "BinaryOperator",
	KindNetTypeWire:             "NetTypeWire",
	KindIntegerVectorTypeReg:    "IntegerVectorTypeReg",
}

var kindByName = func() map[string]Kind {
	out := make(map[string]Kind, len(kindValueMap))
	for k, v := range kindValueMap {
		out[v] = k
	}

	return out
}()

func (k Kind) String() string {
	v, ok := kindValueMap[k]
	if !ok {
		return fmt.Sprintf("invalid(%d)", k)
	}

	return v
}

var (
	_ encoding.TextMarshaler   = Kind(0)
	_ encoding.TextUnmarshaler = (*Kind)(nil)
)

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	v, ok := kindValueMap[k]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid Kind(%d)", int(k))
	}

	return []byte(v), nil
}

// UnmarshalText decodes a node kind name. Names outside the known set are
// legal in tree dumps and map to KindOther.
func (k *Kind) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		return fmt.Errorf("empty node kind")
	}

	if v, ok := kindByName[string(b)]; ok {
		*k = v
		return nil
	}

	*k = KindOther

	return nil
}
