// Package restclient is the outbound HTTP dispatch engine of the gateway.
//
// A [Dispatcher] sends one JSON request described by a [Request], retries it
// once when the upstream rejects the credentials (HTTP 401), and either
// returns the classified failure as a [*ResponseError] or swallows it,
// depending on [Options.FailFast].
//
// Failures are classified by [Classify] into a fixed set of categories:
//
//	400            BadRequest
//	401            Unauthorized
//	404            NotFound
//	429            RateLimited
//	other statuses ExchangeError
//	no response    InternalError
//
// Each *ResponseError unwraps to its category sentinel, so callers match
// with errors.Is(err, restclient.ErrRateLimited).
package restclient
