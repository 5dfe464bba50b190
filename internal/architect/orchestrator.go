package architect

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"architect/internal/gateway/repository/archive"
	"architect/internal/gateway/repository/thread"
	llmclient "architect/internal/llmClient"
)

// ResultKind tags what HandleMessage produced.
type ResultKind string

const (
	ResultText      ResultKind = "text"
	ResultBlueprint ResultKind = "blueprint"
)

// Result is the typed outcome of one handled message. Text always carries
// the fence-stripped model output; Blueprint is set only for ResultBlueprint.
// Warning reports a non-fatal persistence failure that happened after the
// model already produced the response.
type Result struct {
	Kind      ResultKind
	Text      string
	Blueprint *BlueprintDocument
	Warning   string
}

// Orchestrator coordinates thread store, prompt composition, model
// invocation and response classification for each inbound user message.
// It holds no per-call state; one instance is shared across concurrent
// requests. There is no cross-request mutual exclusion per thread: two
// concurrent messages on one thread interleave their stored turns in
// arrival order.
type Orchestrator struct {
	store   thread.Store
	llm     llmclient.LLMClient
	archive archive.Store
	log     zerolog.Logger
}

func NewOrchestrator(store thread.Store, llm llmclient.LLMClient, archiveStore archive.Store, log zerolog.Logger) *Orchestrator {
	return &Orchestrator{
		store:   store,
		llm:     llm,
		archive: archiveStore,
		log:     log,
	}
}

// HandleMessage runs one full conversation step: load history, compose the
// prompt, invoke the model, classify the output, persist the new turns and
// return the typed result. The agent turn always stores the raw model text,
// even when classified as a blueprint, so history stays a faithful
// transcript.
func (o *Orchestrator) HandleMessage(ctx context.Context, threadID, userText string) (Result, error) {
	threadID = strings.TrimSpace(threadID)
	userText = strings.TrimSpace(userText)
	if threadID == "" {
		return Result{}, wrapErr("orchestrator", KindInvalidRequest, fmt.Errorf("threadId is required"))
	}
	if userText == "" {
		return Result{}, wrapErr("orchestrator", KindInvalidRequest, fmt.Errorf("message is required"))
	}

	history, err := o.store.Load(ctx, threadID)
	if err != nil {
		return Result{}, wrapErr("thread store", KindStorageUnavailable, err)
	}

	messages, injectedSystem := ComposeMessages(history, userText)

	raw, err := o.llm.Complete(ctx, messages)
	if err != nil {
		// Nothing has been appended yet: a timed-out or cancelled model call
		// leaves the thread store unchanged.
		return Result{}, wrapErr("model invoker", KindModelUnavailable, err)
	}

	result := o.classify(raw)

	// The model already produced an answer the user paid latency for, so
	// persistence failures from here on are reported as warnings, not
	// fatal errors. Persistence outlives the caller's cancellation.
	persistCtx := context.WithoutCancel(ctx)
	if err := o.persistTurns(persistCtx, threadID, userText, raw, injectedSystem); err != nil {
		o.log.Warn().Err(err).Str("thread_id", threadID).Msg("failed to persist conversation turn")
		result.Warning = fmt.Sprintf("history not persisted: %v", err)
	}
	if result.Kind == ResultBlueprint {
		o.archiveBlueprint(persistCtx, threadID, result.Text)
	}
	return result, nil
}

func (o *Orchestrator) classify(raw string) Result {
	cls := Classify(raw)
	if cls.Structured {
		if doc, ok := ValidateBlueprint(cls.Candidate); ok {
			return Result{Kind: ResultBlueprint, Text: cls.Text, Blueprint: doc}
		}
	}
	return Result{Kind: ResultText, Text: cls.Text}
}

func (o *Orchestrator) persistTurns(ctx context.Context, threadID, userText, raw string, injectedSystem bool) error {
	if injectedSystem {
		if err := o.store.Append(ctx, threadID, thread.Turn{Role: thread.RoleSystem, Content: SystemPrompt}); err != nil {
			return err
		}
	}
	if err := o.store.Append(ctx, threadID, thread.Turn{Role: thread.RoleUser, Content: userText}); err != nil {
		return err
	}
	return o.store.Append(ctx, threadID, thread.Turn{Role: thread.RoleAgent, Content: raw})
}

// archiveBlueprint snapshots an emitted blueprint document to the archive
// store, best-effort.
func (o *Orchestrator) archiveBlueprint(ctx context.Context, threadID, doc string) {
	if o.archive == nil {
		return
	}
	path := fmt.Sprintf("blueprints/%d.json", time.Now().UnixMilli())
	if err := o.archive.Put(ctx, threadID, path, []byte(doc)); err != nil {
		o.log.Warn().Err(err).Str("thread_id", threadID).Msg("failed to archive blueprint")
	}
}
