// Command play is a terminal client for the mancala relay. It supports
// pass-and-play on one terminal, listing open games, hosting a game
// (pending players are accepted automatically), and joining one.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/MegaCode111REAL/mancala-web/client"
	"github.com/MegaCode111REAL/mancala-web/game/engine"
	"github.com/MegaCode111REAL/mancala-web/relay"
)

func main() {
	cmd := &cli.Command{
		Name:  "play",
		Usage: "terminal client for the mancala relay",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "server",
				Value: "ws://localhost:8080/ws",
				Usage: "relay WebSocket URL",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "local",
				Usage:  "pass-and-play on this terminal",
				Action: runLocal,
			},
			{
				Name:   "list",
				Usage:  "list open games on the relay",
				Action: runList,
			},
			{
				Name:  "host",
				Usage: "host a game and play the south side",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "name", Value: "", Usage: "game and host display name"},
				},
				Action: runHost,
			},
			{
				Name:  "join",
				Usage: "join a game and play the north side",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "room", Required: true, Usage: "room id to join"},
					&cli.StringFlag{Name: "name", Value: "", Usage: "player display name"},
				},
				Action: runJoin,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// renderBoard draws the board with north's row reversed so both rows sow
// counter-clockwise on screen.
func renderBoard(s *engine.GameState) string {
	var b strings.Builder

	north := s.NorthStore()
	south := s.SouthStore()

	b.WriteString("        ")
	for idx := north - 1; idx > south; idx-- {
		fmt.Fprintf(&b, "%3d ", s.Board[idx])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "N [%3d]", s.Board[north])
	b.WriteString(strings.Repeat(" ", 4*(north-south-1)+2))
	fmt.Fprintf(&b, "[%3d] S\n", s.Board[south])
	b.WriteString("        ")
	for idx := 0; idx < south; idx++ {
		fmt.Fprintf(&b, "%3d ", s.Board[idx])
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Turn: %s\n", s.Turn)

	return b.String()
}

func runLocal(ctx context.Context, cmd *cli.Command) error {
	controller := client.New("", client.Handlers{})
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Pass-and-play. Enter a pit index to sow, r to reset, q to quit.")
	for {
		state := controller.State()
		fmt.Println(renderBoard(state))
		fmt.Printf("%s pits %v> ", state.Turn, state.LegalMoves())

		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		switch input {
		case "q":
			return nil
		case "r":
			controller.Reset()
			continue
		}

		pit, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("enter a pit index, r, or q")
			continue
		}
		if err := controller.Move(pit); err != nil {
			fmt.Printf("cannot sow pit %d: %v\n", pit, err)
		}
	}
}

func runList(ctx context.Context, cmd *cli.Command) error {
	games := make(chan []relay.GameSummary, 1)
	controller := client.New(cmd.String("server"), client.Handlers{
		OnGames: func(g []relay.GameSummary) {
			select {
			case games <- g:
			default:
			}
		},
	})

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go controller.Run(runCtx)

	select {
	case snapshot := <-games:
		if len(snapshot) == 0 {
			fmt.Println("No open games.")
			return nil
		}
		for _, g := range snapshot {
			fmt.Printf("%s  %-20s host=%s players=%d\n", g.Room, g.Name, g.HostName, len(g.Players))
		}
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("no response from relay at %s", cmd.String("server"))
	}
}

// session wires controller callbacks into channels for the interactive
// commands.
type session struct {
	controller *client.Controller
	created    chan string
	joinReq    chan string
	accepted   chan string
	state      chan *engine.GameState
	rejected   chan string
	errors     chan string
}

func newSession(url string) *session {
	s := &session{
		created:  make(chan string, 1),
		joinReq:  make(chan string, 8),
		accepted: make(chan string, 1),
		state:    make(chan *engine.GameState, 8),
		rejected: make(chan string, 1),
		errors:   make(chan string, 1),
	}
	s.controller = client.New(url, client.Handlers{
		OnCreated:      func(roomID string) { s.created <- roomID },
		OnJoinRequest:  func(name, playerID string) { s.joinReq <- playerID },
		OnJoinAccepted: func(roomID, hostName string) { s.accepted <- roomID },
		OnState: func(state *engine.GameState) {
			select {
			case s.state <- state:
			default:
			}
		},
		OnRejected: func(reason string) { s.rejected <- reason },
		OnError:    func(msg string) { s.errors <- msg },
	})
	return s
}

func runHost(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		name = "Terminal"
	}

	s := newSession(cmd.String("server"))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.controller.Run(runCtx)

	time.Sleep(200 * time.Millisecond)
	if err := s.controller.CreateGame(name); err != nil {
		return err
	}

	select {
	case roomID := <-s.created:
		fmt.Printf("Hosting room %s. Waiting for a player...\n", roomID)
	case <-time.After(5 * time.Second):
		return fmt.Errorf("relay did not acknowledge the room")
	}

	// First requester gets the seat.
	select {
	case playerID := <-s.joinReq:
		if err := s.controller.Accept(playerID); err != nil {
			return err
		}
		fmt.Println("Player joined. You are south.")
	case <-ctx.Done():
		return ctx.Err()
	}

	return playLoop(ctx, s, engine.South)
}

func runJoin(ctx context.Context, cmd *cli.Command) error {
	name := cmd.String("name")
	if name == "" {
		name = "Challenger"
	}

	s := newSession(cmd.String("server"))
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go s.controller.Run(runCtx)

	time.Sleep(200 * time.Millisecond)
	if err := s.controller.JoinGame(cmd.String("room"), name); err != nil {
		return err
	}

	select {
	case <-s.accepted:
		fmt.Println("Joined. You are north.")
	case reason := <-s.rejected:
		return fmt.Errorf("join rejected: %s", reason)
	case msg := <-s.errors:
		return fmt.Errorf("relay error: %s", msg)
	case <-time.After(30 * time.Second):
		return fmt.Errorf("host did not respond")
	}

	return playLoop(ctx, s, engine.North)
}

// playLoop alternates between prompting for our side's move and waiting
// for the opponent's replicated state.
func playLoop(ctx context.Context, s *session, mySide engine.Side) error {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		state := s.controller.State()
		fmt.Println(renderBoard(state))

		if state.Turn != mySide {
			fmt.Println("Waiting for opponent...")
			select {
			case <-s.state:
				continue
			case reason := <-s.rejected:
				return fmt.Errorf("game over: %s", reason)
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		fmt.Printf("%s pits %v (q to quit)> ", mySide, state.LegalMoves())
		if !scanner.Scan() {
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "q" {
			if s.controller.Mode() == client.ModeHost {
				s.controller.CloseRoom()
			}
			return nil
		}

		pit, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("enter a pit index or q")
			continue
		}
		if err := s.controller.Move(pit); err != nil {
			fmt.Printf("cannot sow pit %d: %v\n", pit, err)
		}
	}
}
