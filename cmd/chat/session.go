package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/easeaico/oriona/internal/agent"
	"github.com/easeaico/oriona/internal/knowledge"
	"github.com/easeaico/oriona/internal/types"
)

const maxHistory = 20

type companion interface {
	Reply(ctx context.Context, req agent.ChatRequest) (agent.ChatResponse, error)
	UserSummary(ctx context.Context, userID string) (*agent.Summary, error)
	Recall(ctx context.Context, userID, query string) (string, bool)
	Forget(ctx context.Context, userID string) error
	IceBreaker() string
	FollowUp(ctx context.Context, userID string) string
	KnowledgeStats() knowledge.Stats
}

// session is one terminal conversation. History lives only in process.
type session struct {
	companion companion
	userID    string
	mode      types.Mode
	history   []types.Turn
	out       io.Writer
}

func newSession(c companion, userID string, mode types.Mode, out io.Writer) *session {
	return &session{companion: c, userID: userID, mode: mode, out: out}
}

func (s *session) run(ctx context.Context, in io.Reader) error {
	fmt.Fprintf(s.out, "Oriona (modo %s). Escribe /ayuda para ver los comandos.\n", s.mode)
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		quit, err := s.handle(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// handle processes one input line and reports whether the user asked to quit.
func (s *session) handle(ctx context.Context, line string) (bool, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return false, nil
	}
	if strings.HasPrefix(line, "/") {
		return s.command(ctx, line)
	}

	resp, err := s.companion.Reply(ctx, agent.ChatRequest{
		UserID:  s.userID,
		Message: line,
		History: s.history,
		Mode:    s.mode,
	})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(s.out, "%s\n", resp.Message)

	s.history = append(s.history,
		types.Turn{Content: line, IsUser: true},
		types.Turn{Content: resp.Message},
	)
	if len(s.history) > maxHistory {
		s.history = s.history[len(s.history)-maxHistory:]
	}
	return false, nil
}

func (s *session) command(ctx context.Context, line string) (bool, error) {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/salir":
		return true, nil
	case "/modo":
		if arg == "" {
			fmt.Fprintf(s.out, "Modo actual: %s\n", s.mode)
			return false, nil
		}
		s.mode = types.ParseMode(arg)
		fmt.Fprintf(s.out, "Modo cambiado a %s\n", s.mode)
	case "/perfil":
		summary, err := s.companion.UserSummary(ctx, s.userID)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(s.out, "%s\n", summary.Description)
		if summary.Engagement != nil {
			fmt.Fprintf(s.out, "Conversaciones: %d, temas: %s\n",
				summary.Engagement.ConversationCount, strings.Join(summary.Engagement.Topics, ", "))
		}
		for _, w := range summary.TopWords {
			fmt.Fprintf(s.out, "  %s (%d)\n", w.Word, w.Frequency)
		}
	case "/hielo":
		fmt.Fprintf(s.out, "%s\n", s.companion.IceBreaker())
	case "/seguir":
		fmt.Fprintf(s.out, "%s\n", s.companion.FollowUp(ctx, s.userID))
	case "/conocimiento":
		st := s.companion.KnowledgeStats()
		fmt.Fprintf(s.out, "Técnicas: %d, conceptos: %d, frases empáticas: %d\n",
			st.Techniques, st.Concepts, st.EmpathyPatterns)
	case "/recuerdo":
		if arg == "" {
			fmt.Fprintln(s.out, "Uso: /recuerdo <tema>")
			return false, nil
		}
		if memory, ok := s.companion.Recall(ctx, s.userID, arg); ok {
			fmt.Fprintf(s.out, "%s\n", memory)
		} else {
			fmt.Fprintln(s.out, "No recuerdo nada sobre eso todavía.")
		}
	case "/olvidar":
		if err := s.companion.Forget(ctx, s.userID); err != nil {
			return false, err
		}
		s.history = nil
		fmt.Fprintln(s.out, "He olvidado todo lo que sabía de ti.")
	case "/ayuda":
		fmt.Fprintln(s.out, "Comandos: /modo [auto|investigacion|conversacion], /perfil, /hielo, /seguir, /conocimiento, /recuerdo <tema>, /olvidar, /salir")
	default:
		fmt.Fprintf(s.out, "Comando desconocido: %s\n", name)
	}
	return false, nil
}
