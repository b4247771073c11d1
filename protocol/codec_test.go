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

package protocol

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sasim081/linera-protocol/data/basics"
)

func TestEncodeDecodeReflect(t *testing.T) {
	in := basics.Amount{Raw: 987654321}
	buf := EncodeReflect(in)

	var out basics.Amount
	require.NoError(t, DecodeReflect(buf, &out))
	require.Equal(t, in, out)
}

func TestEncodingIsCanonical(t *testing.T) {
	type record struct {
		A uint64
		B string
	}
	in := record{A: 1, B: "x"}
	require.Equal(t, EncodeReflect(in), EncodeReflect(in))
	require.Equal(t, EncodedLen(in), len(EncodeReflect(in)))
}
