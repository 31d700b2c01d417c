// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package intern

import "strings"

const maxInlined = 32 / 6

// padding is the char6 value used to fill out strings shorter than
// maxInlined. It is the sextet 077, so a string ending in it cannot be
// inlined.
const padding = '$'

var (
	// Every character allowed in a C++ identifier, plus the common '$'
	// extension, fits in exactly 64 code points.
	char6ToByte = []byte("0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ_$")
	byteToChar6 = func() []byte {
		out := make([]byte, 256)
		for i := range out {
			out[i] = 0xff
		}
		for j, b := range char6ToByte {
			out[int(b)] = byte(j)
		}
		return out
	}()
)

// encodeChar6 tries to pack data into an ID.
func encodeChar6(data string) (ID, bool) {
	if data == "" {
		return 0, true
	}
	if len(data) > maxInlined || data[len(data)-1] == padding {
		return 0, false
	}
	return encodeOutlined(data)
}

func encodeOutlined(data string) (ID, bool) {
	// Starting from all ones sets the sign bit and leaves any unused trailing
	// sextets equal to padding, which is how decode recovers the length.
	value := ID(-1)
	for i := len(data) - 1; i >= 0; i-- {
		sextet := byteToChar6[data[i]]
		if sextet == 0xff {
			return 0, false
		}
		value <<= 6
		value |= ID(sextet)
	}
	return value, true
}

// decodeChar6 unpacks an ID produced by encodeChar6.
func decodeChar6(id ID) string {
	var data [maxInlined]byte
	for i := range data {
		data[i] = char6ToByte[int(id&077)]
		id >>= 6
	}
	return strings.TrimRight(string(data[:]), string(padding))
}
