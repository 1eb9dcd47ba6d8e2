package movable

import (
	"context"
	"fmt"
	"sync"

	"github.com/Project-Sylos/Desktop98/internal/logging"
	"github.com/Project-Sylos/Desktop98/internal/types"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default button labels
const (
	DefaultConfirmText = "Yes"
	DefaultCancelText  = "Cancel"
	DefaultOKText      = "OK"
)

type pendingPrompt struct {
	prompt types.Prompt
	done   chan struct{}
	result types.PromptResult
}

// Prompts tracks non-movable confirmation, information, and error prompts
// until a collaborator answers them.
type Prompts struct {
	mu      sync.Mutex
	order   []string
	pending map[string]*pendingPrompt
	logger  *zap.Logger
}

// NewPrompts creates an empty prompt tracker
func NewPrompts() *Prompts {
	return &Prompts{
		pending: make(map[string]*pendingPrompt),
		logger:  logging.Named("prompts"),
	}
}

// Show registers a prompt and fills in default button labels
func (p *Prompts) Show(options types.PromptOptions) (types.Prompt, error) {
	switch options.Kind {
	case types.DialogConfirmation:
		if options.ConfirmText == "" {
			options.ConfirmText = DefaultConfirmText
		}
		if options.CancelText == "" {
			options.CancelText = DefaultCancelText
		}
	case types.DialogInformation, types.DialogError:
		if options.OKText == "" {
			options.OKText = DefaultOKText
		}
	default:
		return types.Prompt{}, fmt.Errorf("%w: kind %q", ErrInvalidPrompt, options.Kind)
	}

	prompt := types.Prompt{ID: uuid.New().String(), Options: options}

	p.mu.Lock()
	p.pending[prompt.ID] = &pendingPrompt{prompt: prompt, done: make(chan struct{})}
	p.order = append(p.order, prompt.ID)
	p.mu.Unlock()

	p.logger.Debug("prompt shown", zap.String("id", prompt.ID), zap.String("kind", string(options.Kind)))
	return prompt, nil
}

// Confirm shows a confirmation prompt with Yes/Cancel buttons
func (p *Prompts) Confirm(title, message string) (types.Prompt, error) {
	return p.Show(types.PromptOptions{Kind: types.DialogConfirmation, Title: title, Message: message})
}

// Inform shows an information prompt with an OK button
func (p *Prompts) Inform(title, message string) (types.Prompt, error) {
	return p.Show(types.PromptOptions{Kind: types.DialogInformation, Title: title, Message: message})
}

// Error shows an error prompt with an OK button
func (p *Prompts) Error(title, message string) (types.Prompt, error) {
	return p.Show(types.PromptOptions{Kind: types.DialogError, Title: title, Message: message})
}

// Pending lists unanswered prompts in the order they were shown
func (p *Prompts) Pending() []types.Prompt {
	p.mu.Lock()
	defer p.mu.Unlock()

	prompts := make([]types.Prompt, 0, len(p.order))
	for _, id := range p.order {
		prompts = append(prompts, p.pending[id].prompt)
	}
	return prompts
}

// Resolve answers a prompt and wakes every Await on it
func (p *Prompts) Resolve(id string, confirmed bool) (types.PromptResult, error) {
	p.mu.Lock()
	entry, ok := p.pending[id]
	if !ok {
		p.mu.Unlock()
		return types.PromptResult{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}
	delete(p.pending, id)
	for i, pendingID := range p.order {
		if pendingID == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
	entry.result = types.PromptResult{ID: id, Confirmed: confirmed}
	close(entry.done)
	p.mu.Unlock()

	p.logger.Debug("prompt resolved", zap.String("id", id), zap.Bool("confirmed", confirmed))
	return entry.result, nil
}

// Await blocks until the prompt is resolved or ctx is done
func (p *Prompts) Await(ctx context.Context, id string) (types.PromptResult, error) {
	p.mu.Lock()
	entry, ok := p.pending[id]
	p.mu.Unlock()
	if !ok {
		return types.PromptResult{}, fmt.Errorf("%w: %s", ErrUnknownPrompt, id)
	}

	select {
	case <-entry.done:
		return entry.result, nil
	case <-ctx.Done():
		return types.PromptResult{}, ctx.Err()
	}
}
