// Package transport performs the HTTP round trips of the weaviate client and
// decodes every outcome into one envelope type, [Response].
//
// # Calls
//
// Go methods cannot carry type parameters, so the verbs are package-level
// generic functions taking the [Transport]:
//
//	meta := transport.Get[Meta](ctx, t, "/v1/meta", nil)
//	if !meta.IsSuccess() {
//	    return meta.Err()
//	}
//	fmt.Println(meta.Result.Version)
//
// Every call is blocking and honours ctx. To overlap calls, run them with
// [Async] or your own goroutines; the Transport is safe for concurrent use.
//
// # Decoding
//
//   - 2xx with a body: the body is decoded into T. encoding/json matches
//     field names case-insensitively. A decode failure yields an error
//     "Failed to deserialize response: ..." and no result.
//   - 2xx without a body: no result and no error, except for T = [Object],
//     which yields an empty Object.
//   - non-2xx: the body is decoded as `{"error":[{"message":...}]}`; if that
//     fails the raw body becomes the single message.
//   - no response at all (connection refused, timeout, cancellation): the
//     error is "Request failed: ..." and StatusCode is 0.
//
// # Batch responses
//
// Batch endpoints return a bare JSON array. [SendBatch] decodes it with
// [BatchArrayDecoder], which first unmarshals the array and then builds a
// [BatchResponse] whose Successful and Failed counters are derived from
// each element's status.
//
// # Observability
//
// Each call starts a client span named "weaviate.<METHOD>", logs at debug
// level (warn on transport failures) and, when configured, reports to an
// observability.Observer.
package transport
