package enum

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for enumeration events.
var (
	SignalTypeDefined    = capitan.NewSignal("enum.type.defined", "Type declared and validated")
	SignalRegistryBuilt  = capitan.NewSignal("enum.registry.built", "Member registry built on first use")
	SignalParseFailed    = capitan.NewSignal("enum.parse.failed", "Text matched no member")
	SignalExportComplete = capitan.NewSignal("enum.export.complete", "Descriptor export finished")
	SignalImportComplete = capitan.NewSignal("enum.import.complete", "Descriptor import finished")
)

// Keys for typed event data.
var (
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySeparator   = capitan.NewStringKey("separator")
	KeyMemberCount = capitan.NewIntKey("member_count")
	KeyInput       = capitan.NewStringKey("input")
	KeyContentType = capitan.NewStringKey("content_type")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitTypeDefined emits an event when New accepts a definition.
func emitTypeDefined(ctx context.Context, typeName, separator string, members int) {
	capitan.Emit(ctx, SignalTypeDefined,
		KeyTypeName.Field(typeName),
		KeySeparator.Field(separator),
		KeyMemberCount.Field(members),
	)
}

// emitRegistryBuilt emits an event when a registry finishes building.
func emitRegistryBuilt(ctx context.Context, typeName string, members int, duration time.Duration) {
	capitan.Emit(ctx, SignalRegistryBuilt,
		KeyTypeName.Field(typeName),
		KeyMemberCount.Field(members),
		KeyDuration.Field(duration),
	)
}

// emitParseFailed emits an event when Parse rejects its input.
func emitParseFailed(ctx context.Context, typeName, input string, err error) {
	capitan.Error(ctx, SignalParseFailed,
		KeyTypeName.Field(typeName),
		KeyInput.Field(input),
		KeyError.Field(err),
	)
}

// emitExportComplete emits an event when an export finishes.
func emitExportComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalExportComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalExportComplete, fields...)
	}
}

// emitImportComplete emits an event when an import finishes.
func emitImportComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalImportComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalImportComplete, fields...)
	}
}
