package menu

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/phrazzld/scry-flashcards/internal/domain"
	"github.com/phrazzld/scry-flashcards/internal/platform/logger"
	"github.com/phrazzld/scry-flashcards/internal/service"
)

// Menu options, in display order.
const (
	OptionList   = "1"
	OptionCreate = "2"
	OptionUpdate = "3"
	OptionDelete = "4"
	OptionExit   = "5"
)

// Menu runs the numbered flashcard menu over a line-oriented reader and writer.
type Menu struct {
	svc    service.FlashcardService
	in     *bufio.Reader
	out    io.Writer
	styles styles
	logger *slog.Logger
}

// New creates a Menu reading from in and writing to out.
// It panics if svc is nil.
func New(svc service.FlashcardService, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	if svc == nil {
		panic("flashcard service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Menu{
		svc:    svc,
		in:     bufio.NewReader(in),
		out:    out,
		styles: newStyles(out),
		logger: logger.With(slog.String("component", "menu")),
	}
}

// Run shows the menu until the user picks Exit or the input ends.
// Action failures are printed and the loop continues; only a failure to
// read input is returned.
func (m *Menu) Run(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, m.logger)

	for {
		m.printMenu()

		choice, err := m.readLine(m.styles.prompt.Render("Choose an option: "))
		if err != nil {
			return m.finish(log, err)
		}

		var actionErr error
		switch choice {
		case OptionList:
			actionErr = m.list(ctx)
		case OptionCreate:
			actionErr = m.create(ctx)
		case OptionUpdate:
			actionErr = m.update(ctx)
		case OptionDelete:
			actionErr = m.remove(ctx)
		case OptionExit:
			m.println(m.styles.title.Render("Goodbye."))
			return nil
		default:
			actionErr = ErrInvalidOption
		}

		if actionErr == nil {
			continue
		}
		if errors.Is(actionErr, io.EOF) || errors.Is(actionErr, errInput) {
			return m.finish(log, actionErr)
		}

		log.Debug("menu action failed",
			slog.String("option", choice),
			slog.String("error", actionErr.Error()))
		m.printError(actionErr)
	}
}

// finish ends the loop: end of input is a clean exit, anything else is returned.
func (m *Menu) finish(log *slog.Logger, err error) error {
	if errors.Is(err, io.EOF) {
		log.Debug("input closed, leaving menu")
		m.println("")
		return nil
	}
	log.Error("failed to read input", slog.String("error", err.Error()))
	return err
}

func (m *Menu) printMenu() {
	m.println("")
	m.println(m.styles.title.Render("=== Flashcards ==="))
	m.println(m.styles.option.Render(OptionList + ") List flashcards"))
	m.println(m.styles.option.Render(OptionCreate + ") Create a flashcard"))
	m.println(m.styles.option.Render(OptionUpdate + ") Update a flashcard"))
	m.println(m.styles.option.Render(OptionDelete + ") Delete a flashcard"))
	m.println(m.styles.option.Render(OptionExit + ") Exit"))
}

func (m *Menu) list(ctx context.Context) error {
	cards, err := m.svc.ListCards(ctx)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		m.println(m.styles.warning.Render("No flashcards found."))
		return nil
	}
	m.printCards(cards)
	return nil
}

func (m *Menu) create(ctx context.Context) error {
	question, err := m.readLine(m.styles.prompt.Render("Question: "))
	if err != nil {
		return err
	}
	answer, err := m.readLine(m.styles.prompt.Render("Answer: "))
	if err != nil {
		return err
	}

	if _, err := m.svc.CreateCard(ctx, question, answer); err != nil {
		return err
	}
	m.println(m.styles.success.Render("Flashcard created."))
	return nil
}

func (m *Menu) update(ctx context.Context) error {
	card, err := m.selectCard(ctx, "update")
	if err != nil || card == nil {
		return err
	}

	var edit service.CardEdit
	question, err := m.readLine(m.styles.prompt.Render(fmt.Sprintf("New question [%s]: ", card.Question)))
	if err != nil {
		return err
	}
	if question != "" {
		edit.Question = &question
	}

	answer, err := m.readLine(m.styles.prompt.Render(fmt.Sprintf("New answer [%s]: ", card.Answer)))
	if err != nil {
		return err
	}
	if answer != "" {
		edit.Answer = &answer
	}

	if edit.Question == nil && edit.Answer == nil {
		m.println(m.styles.warning.Render("Nothing changed."))
		return nil
	}

	if _, err := m.svc.EditCard(ctx, card.ID, edit); err != nil {
		return err
	}
	m.println(m.styles.success.Render("Flashcard updated."))
	return nil
}

func (m *Menu) remove(ctx context.Context) error {
	card, err := m.selectCard(ctx, "delete")
	if err != nil || card == nil {
		return err
	}

	if err := m.svc.DeleteCard(ctx, card.ID); err != nil {
		return err
	}
	m.println(m.styles.success.Render("Flashcard deleted."))
	return nil
}

// selectCard lists the collection and reads a 1-based position.
// It returns a nil card and nil error when there is nothing to choose from.
func (m *Menu) selectCard(ctx context.Context, verb string) (*domain.Flashcard, error) {
	cards, err := m.svc.ListCards(ctx)
	if err != nil {
		return nil, err
	}
	if len(cards) == 0 {
		m.println(m.styles.warning.Render(fmt.Sprintf("No flashcards to %s.", verb)))
		return nil, nil
	}
	m.printCards(cards)

	raw, err := m.readLine(m.styles.prompt.Render(fmt.Sprintf("Enter the number of the flashcard to %s: ", verb)))
	if err != nil {
		return nil, err
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > len(cards) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidIndex, raw)
	}
	return cards[n-1], nil
}

func (m *Menu) printCards(cards []*domain.Flashcard) {
	for i, c := range cards {
		m.println(fmt.Sprintf("%s %s => %s",
			m.styles.index.Render(fmt.Sprintf("[%d]", i+1)), c.Question, c.Answer))
	}
}

func (m *Menu) printError(err error) {
	m.println(m.styles.failure.Render("Error: " + userMessage(err)))
}

// readLine prints the prompt and returns the next input line, trimmed.
// A final line without a newline is returned before io.EOF.
func (m *Menu) readLine(prompt string) (string, error) {
	_, _ = fmt.Fprint(m.out, prompt)

	line, err := m.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("%w: %w", errInput, err)
	}
	return strings.TrimSpace(line), nil
}

func (m *Menu) println(s string) {
	_, _ = fmt.Fprintln(m.out, s)
}
