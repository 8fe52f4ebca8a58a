package snapshot

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/propensio/seggo/codec"
	"github.com/propensio/seggo/resource"
)

// formatVersion guards against reading envelopes written by an
// incompatible future layout.
const formatVersion = 1

// envelope is the self-describing on-store format. The envelope itself is
// always standard JSON; only the payload goes through the configured codec
// and compressor.
type envelope struct {
	Version     int       `json:"version"`
	Codec       string    `json:"codec"`
	Compression string    `json:"compression"`
	CreatedAt   time.Time `json:"created_at"`
	Payload     []byte    `json:"payload"`
}

// Options configures snapshot encoding.
type Options struct {
	// Codec encodes the value. Defaults to codec.Default.
	Codec codec.Codec

	// Compressor shrinks the encoded payload. Defaults to Zstd.
	Compressor Compressor

	// Controller rate-limits upload bytes when set.
	Controller *resource.Controller
}

// Save encodes value and writes it to the store under name. The write is a
// wholesale replacement; readers never observe a partial snapshot.
func Save(ctx context.Context, store Store, name string, value any, opts Options) error {
	c := opts.Codec
	if c == nil {
		c = codec.Default
	}
	comp := opts.Compressor
	if comp == nil {
		comp = Zstd{}
	}

	encoded, err := c.Marshal(value)
	if err != nil {
		return fmt.Errorf("snapshot: encode payload: %w", err)
	}

	compressed, err := comp.Compress(encoded)
	if err != nil {
		return fmt.Errorf("snapshot: compress payload: %w", err)
	}

	data, err := json.Marshal(envelope{
		Version:     formatVersion,
		Codec:       c.Name(),
		Compression: comp.Name(),
		CreatedAt:   time.Now().UTC(),
		Payload:     compressed,
	})
	if err != nil {
		return fmt.Errorf("snapshot: encode envelope: %w", err)
	}

	if err := opts.Controller.AcquireUpload(ctx, len(data)); err != nil {
		return err
	}

	return store.Put(ctx, name, data)
}

// Load reads the snapshot under name and decodes it into value. Codec and
// compressor are resolved from the envelope header, so a caller needs no
// out-of-band knowledge of how the snapshot was written.
func Load(ctx context.Context, store Store, name string, value any) error {
	data, err := store.Get(ctx, name)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("snapshot: decode envelope: %w", err)
	}
	if env.Version != formatVersion {
		return fmt.Errorf("snapshot: unsupported format version %d", env.Version)
	}

	c, ok := codec.ByName(env.Codec)
	if !ok {
		return fmt.Errorf("snapshot: unknown codec %q", env.Codec)
	}
	comp, ok := CompressorByName(env.Compression)
	if !ok {
		return fmt.Errorf("snapshot: unknown compression %q", env.Compression)
	}

	encoded, err := comp.Decompress(env.Payload)
	if err != nil {
		return err
	}

	if err := c.Unmarshal(encoded, value); err != nil {
		return fmt.Errorf("snapshot: decode payload: %w", err)
	}
	return nil
}
