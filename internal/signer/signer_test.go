// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package signer

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lowerHex64 = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestCanonicalString(t *testing.T) {
	in := Input{
		Timestamp: 1545880607433,
		Method:    "POST",
		Path:      "/v3/quotations",
		Body:      `{"data":{}}`,
	}

	assert.Equal(t, "1545880607433\r\nPOST\r\n/v3/quotations\r\n\r\n{\"data\":{}}", CanonicalString(in))
}

func TestCanonicalString_EmptyBody(t *testing.T) {
	in := Input{Timestamp: 1, Method: "GET", Path: "/v3/orders/1"}

	assert.Equal(t, "1\r\nGET\r\n/v3/orders/1\r\n\r\n", CanonicalString(in))
}

func TestSign_KnownVectors(t *testing.T) {
	tests := []struct {
		name   string
		secret string
		in     Input
		want   string
	}{
		{
			name:   "quotation body",
			secret: "sk_test",
			in:     Input{Timestamp: 1545880607433, Method: "POST", Path: "/v3/quotations", Body: `{"data":{}}`},
			want:   "d066867d85a2e0516377174722265bac6dcafe9959649ddce1d4bdd73c8d2da8",
		},
		{
			name:   "bodyless get",
			secret: "sk_test",
			in:     Input{Timestamp: 1545880607433, Method: "GET", Path: "/v3/orders/123"},
			want:   "5d3f38bcce3f1e8ba617092e222d512ae1f50946306db828d7818898b3dec7f2",
		},
		{
			name:   "order body",
			secret: "secret",
			in:     Input{Timestamp: 1700000000000, Method: "POST", Path: "/v3/orders", Body: `{"data":{"quotationId":"Q1"}}`},
			want:   "628aa1c51670f3833686307b8fc1167d832b6308a066175ea3837c23fdb8c541",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Sign(tt.secret, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Regexp(t, lowerHex64, got)
		})
	}
}

func TestSign_Deterministic(t *testing.T) {
	in := Input{Timestamp: 42, Method: "POST", Path: "/v3/orders", Body: `{"a":1}`}

	first, err := Sign("k", in)
	require.NoError(t, err)
	for range 10 {
		again, err := Sign("k", in)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestSign_SensitiveToEveryComponent(t *testing.T) {
	base := Input{Timestamp: 42, Method: "POST", Path: "/v3/orders", Body: `{"a":1}`}
	want, err := Sign("k", base)
	require.NoError(t, err)

	variants := map[string]Input{
		"timestamp": {Timestamp: 43, Method: base.Method, Path: base.Path, Body: base.Body},
		"method":    {Timestamp: base.Timestamp, Method: "PUT", Path: base.Path, Body: base.Body},
		"path":      {Timestamp: base.Timestamp, Method: base.Method, Path: "/v3/quotations", Body: base.Body},
		"body":      {Timestamp: base.Timestamp, Method: base.Method, Path: base.Path, Body: `{"a": 1}`},
	}
	for name, in := range variants {
		t.Run(name, func(t *testing.T) {
			got, err := Sign("k", in)
			require.NoError(t, err)
			assert.NotEqual(t, want, got)
		})
	}

	other, err := Sign("other", base)
	require.NoError(t, err)
	assert.NotEqual(t, want, other)
}

func TestSign_Errors(t *testing.T) {
	_, err := Sign("", Input{Method: "GET", Path: "/"})
	assert.ErrorIs(t, err, ErrEmptySecret)

	_, err = Sign("k", Input{Method: "POST", Path: "/", Body: string([]byte{0xff, 0xfe})})
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = Sign(string([]byte{0xc3}), Input{Method: "POST", Path: "/"})
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestAuthorizationHeader(t *testing.T) {
	in := Input{Timestamp: 1545880607433}

	assert.Equal(t, "hmac pk_test:1545880607433:abc", AuthorizationHeader("pk_test", in, "abc"))
}

func TestAuthorization(t *testing.T) {
	in := Input{Timestamp: 1545880607433, Method: "POST", Path: "/v3/quotations", Body: `{"data":{}}`}

	got, err := Authorization("pk_test", "sk_test", in)
	require.NoError(t, err)
	assert.Equal(t, "hmac pk_test:1545880607433:d066867d85a2e0516377174722265bac6dcafe9959649ddce1d4bdd73c8d2da8", got)

	_, err = Authorization("pk_test", "", in)
	assert.ErrorIs(t, err, ErrEmptySecret)
}

func TestNewInput(t *testing.T) {
	ts := time.UnixMilli(1700000000123)

	in := NewInput(ts, "POST", "/v3/orders", []byte(`{}`))

	assert.Equal(t, Input{Timestamp: 1700000000123, Method: "POST", Path: "/v3/orders", Body: "{}"}, in)
}
