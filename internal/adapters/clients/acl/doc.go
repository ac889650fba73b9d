// Package acl translates the remote APIs into domain types. Wire formats
// stay inside this package: handlers and services only ever see
// [domain.Article], [domain.Account] and the domain error types.
//
// Adapters:
//
//   - [ContentClient] reads posts, categories, tags, users, media and the
//     RSS feed from the WordPress REST API.
//   - [PublisherClient] reads the account and changes the agreement and
//     username through the publisher API.
//   - [MarketoClient] upserts newsletter leads, authenticating with OAuth2
//     client credentials.
//
// Shared helpers live in [BaseAdapter], [GetJSON], [MapHTTPError],
// [MapStoreErrors], [DecodeResponse] and [TranslateSlice].
//
// Failures surface as [domain.UpstreamError] naming the service, including
// transport failures ([clients.ErrRequestFailed]). A 404 on a by-id lookup
// is a [domain.NotFoundError] and publisher field errors become a
// [domain.StoreErrorList]. Calls are never retried.
package acl
