package auditlog

import (
	"context"

	"nathanbeddoewebdev/svrmgr/internal/util"
)

// Metadata identifies the backend and resource a command acted on.
// Commands attach it to their context while running; the root command
// reads it back once the command returns.
type Metadata struct {
	Profile      string
	ResourceType string
	ResourceID   string
	ResourceName string
}

type metadataKey struct{}

// WithMetadata returns a context carrying meta. Fields left empty in
// meta keep the value from an earlier call, so a command can record the
// resource id first and its display name once the backend returns it.
func WithMetadata(ctx context.Context, meta Metadata) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	merged := MetadataFromContext(ctx)
	for _, f := range []struct {
		dst *string
		src string
	}{
		{&merged.Profile, meta.Profile},
		{&merged.ResourceType, meta.ResourceType},
		{&merged.ResourceID, meta.ResourceID},
		{&merged.ResourceName, meta.ResourceName},
	} {
		if f.src != "" {
			*f.dst = f.src
		}
	}
	return context.WithValue(ctx, metadataKey{}, merged)
}

// MetadataFromContext returns the metadata attached to ctx, if any.
func MetadataFromContext(ctx context.Context) Metadata {
	if ctx == nil {
		return Metadata{}
	}
	meta, _ := ctx.Value(metadataKey{}).(Metadata)
	return meta
}

// Apply copies m onto entry. Resource names are console commands or
// server names and are truncated to MaxArgLength.
func (m Metadata) Apply(entry *AuditEntry) {
	entry.Profile = m.Profile
	entry.ResourceType = m.ResourceType
	entry.ResourceID = m.ResourceID
	entry.ResourceName = util.Truncate(m.ResourceName, MaxArgLength)
}
