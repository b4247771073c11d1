// Copyright (C) 2024-2026 the linera-protocol authors.
// This file is part of linera-protocol
//
// linera-protocol is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// linera-protocol is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with linera-protocol.  If not, see <https://www.gnu.org/licenses/>.

package execution

import (
	"github.com/sasim081/linera-protocol/data/basics"
)

// Operation is an operation to be executed in a block. System operations
// are handled by the protocol itself; user operations carry an opaque
// payload for the target application and are additionally priced per byte.
type Operation struct {
	// System marks operations handled by the system application.
	System bool
	// AppID identifies the target application of a user operation.
	AppID basics.ApplicationID
	// Bytes is the serialized argument of a user operation.
	Bytes []byte
}

// SystemOperation builds a system operation.
func SystemOperation() Operation {
	return Operation{System: true}
}

// UserOperation builds a user operation for the given application.
func UserOperation(appID basics.ApplicationID, bytes []byte) Operation {
	return Operation{AppID: appID, Bytes: bytes}
}

// Message is an outgoing cross-chain message created during execution.
type Message struct {
	// System marks messages produced by the system application.
	System bool
	// AppID identifies the sending application of a user message.
	AppID basics.ApplicationID
	// Bytes is the serialized payload of a user message.
	Bytes []byte
}

// SystemMessage builds a system message.
func SystemMessage() Message {
	return Message{System: true}
}

// UserMessage builds a user message for the given application.
func UserMessage(appID basics.ApplicationID, bytes []byte) Message {
	return Message{AppID: appID, Bytes: bytes}
}

// BlobType discriminates the kinds of binary large objects published on
// chain.
type BlobType uint8

const (
	// BlobData is user data.
	BlobData BlobType = iota
	// BlobContractBytecode is compiled contract bytecode.
	BlobContractBytecode
	// BlobServiceBytecode is compiled service bytecode.
	BlobServiceBytecode
	// BlobCommittee is produced by the validator committee. Committee
	// blobs are exempt from publish accounting.
	BlobCommittee
)

// Blob is a binary large object with out-of-band content.
type Blob struct {
	Type    BlobType
	Content []byte
}

// IsCommitteeBlob reports whether the blob is controlled by the validator
// committee rather than a user.
func (b Blob) IsCommitteeBlob() bool {
	return b.Type == BlobCommittee
}
