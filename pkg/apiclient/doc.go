// Package apiclient provides the single-entry HTTP gateway to the HealthLens
// backend.
//
// Every outbound request flows through one Client. The client concatenates a
// configured base address with the endpoint path, always sends a JSON content
// type, attaches the current bearer credential from a TokenSource, and keeps
// a cookie jar so the backend may authenticate via either mechanism. Failure
// responses are parsed unconditionally to extract the backend's "detail"
// message.
//
// The error taxonomy is deliberately small:
//
//   - *APIError: the backend answered with a non-success status. Message is
//     human-readable and safe to classify or surface.
//   - *TransportError: the request never produced a response (DNS failure,
//     refused connection, timeout, cancelled context).
//
// There is no retry, timeout escalation or backoff beyond the HTTP client's
// own timeout: the backend exposes no idempotency keys, so every call is a
// single attempt.
//
// Usage:
//
//	client, err := apiclient.New("https://api.example.com",
//	    apiclient.WithTokenSource(store.Token),
//	)
//	if err != nil { ... }
//
//	raw, err := client.Post(ctx, "/auth/login", loginRequest{...})
//	var apiErr *apiclient.APIError
//	if errors.As(err, &apiErr) {
//	    // show apiErr.Message
//	}
package apiclient
