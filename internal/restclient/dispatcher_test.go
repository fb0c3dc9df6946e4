// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package restclient

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Chakshu1409/fnp-integrations/internal/config"
	"github.com/Chakshu1409/fnp-integrations/internal/logger"
	"github.com/Chakshu1409/fnp-integrations/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type quote struct {
	ID string `json:"id"`
}

func newTestDispatcher(t *testing.T) *Dispatcher {
	t.Helper()
	client := utils.NewHTTPClient(config.Dispatcher{RequestTimeout: 2 * time.Second})
	return NewDispatcher(client, logger.Nop())
}

// scriptedServer answers attempt n with statuses[n-1] (or the last status)
// and counts calls.
func scriptedServer(t *testing.T, calls *atomic.Int32, statuses []int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := int(calls.Add(1))
		status := statuses[min(n, len(statuses))-1]
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(body))
			return
		}
		_, _ = w.Write([]byte("failure " + strconv.Itoa(n)))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestExecute_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, MediaTypeJSON, r.Header.Get("Content-Type"))
		assert.Equal(t, MediaTypeJSON, r.Header.Get("Accept"))
		assert.Equal(t, "HK", r.Header.Get("market"))

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"a":"<b>"}`, string(body))
		assert.Equal(t, `{"a":"<b>"}`, string(body))

		_, _ = w.Write([]byte(`{"id":"Q1"}`))
	}))
	defer srv.Close()

	d := newTestDispatcher(t)
	got, err := Execute[quote](context.Background(), d, Request{
		Operation: "test",
		Method:    http.MethodPost,
		URL:       srv.URL,
		Headers:   headersOf(map[string]string{"market": "HK"}),
		Body:      map[string]string{"a": "<b>"},
	}, DefaultOptions())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Q1", got.ID)
}

func TestExecute_RetriesOnceOn401(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{401, 200}, `{"id":"after-retry"}`)

	got, err := Execute[quote](context.Background(), newTestDispatcher(t),
		Request{Method: http.MethodGet, URL: srv.URL}, DefaultOptions())

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "after-retry", got.ID)
	assert.EqualValues(t, 2, calls.Load())
}

func TestExecute_401TwiceStopsAfterTwoAttempts(t *testing.T) {
	t.Run("fail fast", func(t *testing.T) {
		var calls atomic.Int32
		srv := scriptedServer(t, &calls, []int{401}, "")

		got, err := Execute[quote](context.Background(), newTestDispatcher(t),
			Request{Method: http.MethodGet, URL: srv.URL}, DefaultOptions())

		assert.Nil(t, got)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
		assert.EqualValues(t, MaxAttempts, calls.Load())

		re, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "failure 2 HOST: 127.0.0.1", re.Message)
		assert.Equal(t, 401, re.Code)
	})

	t.Run("swallowed", func(t *testing.T) {
		var calls atomic.Int32
		srv := scriptedServer(t, &calls, []int{401}, "")

		got, err := Execute[quote](context.Background(), newTestDispatcher(t),
			Request{Method: http.MethodGet, URL: srv.URL}, Options{FailFast: false, AllowRetry: true})

		assert.NoError(t, err)
		assert.Nil(t, got)
		assert.EqualValues(t, MaxAttempts, calls.Load())
	})
}

func TestExecute_NoRetryWhenDisallowed(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{401, 200}, `{"id":"x"}`)

	_, err := Execute[quote](context.Background(), newTestDispatcher(t),
		Request{Method: http.MethodGet, URL: srv.URL}, Options{FailFast: true, AllowRetry: false})

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualValues(t, 1, calls.Load())
}

func TestExecute_NoRetryOnOtherStatuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusForbidden, ErrExchange},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrExchange},
		{http.StatusServiceUnavailable, ErrExchange},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			var calls atomic.Int32
			srv := scriptedServer(t, &calls, []int{tt.status, 200}, `{"id":"x"}`)

			got, err := Execute[quote](context.Background(), newTestDispatcher(t),
				Request{Method: http.MethodGet, URL: srv.URL}, DefaultOptions())

			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualValues(t, 1, calls.Load())
		})
	}
}

func TestExecute_FailFastOffSwallows(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{500}, "")

	got, err := Execute[quote](context.Background(), newTestDispatcher(t),
		Request{Method: http.MethodGet, URL: srv.URL}, Options{})

	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestExecute_NullAndEmptyBodyAreAbsent(t *testing.T) {
	for _, body := range []string{"", "null", "  null \n"} {
		t.Run(strconv.Quote(body), func(t *testing.T) {
			var calls atomic.Int32
			srv := scriptedServer(t, &calls, []int{200}, body)

			got, err := Execute[quote](context.Background(), newTestDispatcher(t),
				Request{Method: http.MethodGet, URL: srv.URL}, DefaultOptions())

			assert.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestExecute_DecodeErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{200}, `{"id":42}`)

	for _, opts := range []Options{DefaultOptions(), {}} {
		got, err := Execute[quote](context.Background(), newTestDispatcher(t),
			Request{Method: http.MethodGet, URL: srv.URL}, opts)

		assert.Nil(t, got)
		assert.ErrorIs(t, err, ErrDecode)
	}
	assert.EqualValues(t, 2, calls.Load())
}

func TestExecute_EncodeErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{200}, `{}`)

	_, err := Execute[quote](context.Background(), newTestDispatcher(t),
		Request{Method: http.MethodPost, URL: srv.URL, Body: make(chan int)}, Options{})

	assert.ErrorIs(t, err, ErrEncode)
	assert.Zero(t, calls.Load())
}

func TestExecute_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	t.Run("fail fast", func(t *testing.T) {
		_, err := Execute[quote](context.Background(), newTestDispatcher(t),
			Request{Method: http.MethodGet, URL: url}, DefaultOptions())

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
		re, ok := AsResponseError(err)
		require.True(t, ok)
		assert.Equal(t, "Microservice Internal Error HOST: 127.0.0.1", re.Message)
		assert.Zero(t, re.HTTPStatus)
	})

	t.Run("swallowed", func(t *testing.T) {
		got, err := Execute[quote](context.Background(), newTestDispatcher(t),
			Request{Method: http.MethodGet, URL: url}, Options{AllowRetry: true})

		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestDo_AuthorizeRunsPerAttemptOverSentBytes(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := calls.Add(1)
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, "sig-"+strconv.Itoa(int(n))+":"+string(body), r.Header.Get("Authorization"))
		if n == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"id":"ok"}`))
	}))
	defer srv.Close()

	var seen [][]byte
	authorize := func(method, rawURL string, body []byte) (Headers, error) {
		seen = append(seen, bytes.Clone(body))
		sig := "sig-" + strconv.Itoa(len(seen)) + ":" + string(body)
		return headersOf(map[string]string{"Authorization": sig}), nil
	}

	var out quote
	found, err := newTestDispatcher(t).Do(context.Background(), Request{
		Method:    http.MethodPost,
		URL:       srv.URL,
		Body:      map[string]int{"n": 1},
		Authorize: authorize,
	}, DefaultOptions(), &out)

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ok", out.ID)
	require.Len(t, seen, 2)
	assert.Equal(t, `{"n":1}`, string(seen[0]))
	assert.Equal(t, seen[0], seen[1])
}

func TestDo_AuthorizeErrorIsFatal(t *testing.T) {
	var calls atomic.Int32
	srv := scriptedServer(t, &calls, []int{200}, `{}`)
	boom := errors.New("no key")

	found, err := newTestDispatcher(t).Do(context.Background(), Request{
		Method: http.MethodGet,
		URL:    srv.URL,
		Authorize: func(string, string, []byte) (Headers, error) {
			return Headers{}, boom
		},
	}, Options{}, nil)

	assert.False(t, found)
	assert.ErrorIs(t, err, ErrAuthorize)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, calls.Load())
}

func TestDispatcher_VerbHelpers(t *testing.T) {
	var gotMethod, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		_, _ = w.Write([]byte(`{"id":"v"}`))
	}))
	defer srv.Close()

	d := newTestDispatcher(t)
	ctx := context.Background()
	var out quote

	found, err := d.Get(ctx, srv.URL, Headers{}, &out, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, http.MethodGet, gotMethod)
	assert.Empty(t, gotBody)

	_, err = d.Post(ctx, srv.URL, Headers{}, []byte(`{"raw":true}`), &out, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, `{"raw":true}`, gotBody)

	_, err = d.Put(ctx, srv.URL, Headers{}, map[string]int{"v": 2}, &out, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, `{"v":2}`, gotBody)

	found, err = d.Delete(ctx, srv.URL, Headers{}, nil, DefaultOptions())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestEncodeBody(t *testing.T) {
	b, err := EncodeBody(nil)
	assert.NoError(t, err)
	assert.Nil(t, b)

	b, err = EncodeBody(struct {
		URL string `json:"url"`
	}{"https://x/?a=1&b=2"})
	require.NoError(t, err)
	assert.Equal(t, `{"url":"https://x/?a=1&b=2"}`, string(b))

	first, _ := EncodeBody(map[string]int{"b": 2, "a": 1})
	second, _ := EncodeBody(map[string]int{"a": 1, "b": 2})
	assert.Equal(t, first, second)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestDo_SendsVerbatimHeaderNames(t *testing.T) {
	var sent http.Header
	client := utils.NewHTTPClient(config.Dispatcher{RequestTimeout: 2 * time.Second})
	client.SetTransport(roundTripFunc(func(r *http.Request) (*http.Response, error) {
		sent = r.Header.Clone()
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"id":"q-1"}`)),
			Request:    r,
		}, nil
	}))
	d := NewDispatcher(client, logger.Nop())

	req := Request{
		Operation: "test.Verbatim",
		Method:    http.MethodPost,
		URL:       "http://provider.test/v3/quotations",
		Headers:   NewHeaderBuilder().SetVerbatim("market", "HK").Build(),
		Body:      map[string]string{"serviceType": "MOTORCYCLE"},
	}

	var out quote
	ok, err := d.Do(context.Background(), req, DefaultOptions(), &out)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "q-1", out.ID)
	assert.Equal(t, []string{"HK"}, sent["market"])
	assert.NotContains(t, sent, "Market")
	assert.Equal(t, []string{MediaTypeJSON}, sent["Content-Type"])
}
