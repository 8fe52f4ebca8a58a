// Package s3 stores snapshots in Amazon S3, optionally coordinated through
// a DynamoDB catalog.
//
// S3 alone gives durable, immutable snapshot blobs. The catalog adds what
// S3 lacks: an atomic "latest snapshot for this dataset" pointer updated
// with conditional writes, so concurrent writers never clobber each other.
package s3
