// Package minio stores snapshots in MinIO or any S3-compatible object
// store that the AWS SDK cannot reach, such as self-hosted deployments
// with custom TLS or path-style addressing.
package minio
