// Package ui is the interactive text front end of room-lab.
// Every line read is one command, answered on the output writer.
package ui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"room-lab/domain"
	roomerrors "room-lab/errors"
	"room-lab/infrastructure/storage"
	"room-lab/projection"
	"room-lab/services"
	"sort"
	"strconv"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const Prompt = "room-lab> "

type StatsProvider func() map[string]uint64

// HistoryProvider gives the placements a user went through, oldest first
type HistoryProvider interface {
	History(user domain.UserID) []projection.Placement
}

type Shell struct {
	log      *slog.Logger
	service  *services.RoomService
	journal  storage.IJournalRepository
	history  HistoryProvider
	stats    StatsProvider
	out      io.Writer
	colours  bool
	limit    int
	commands map[string]command
}

type command struct {
	usage string
	args  int
	run   func(args []string) error
}

func NewShell(log *slog.Logger, service *services.RoomService, journal storage.IJournalRepository,
	history HistoryProvider, stats StatsProvider, out io.Writer, colours bool, limit int) *Shell {
	s := &Shell{
		log:     log,
		service: service,
		journal: journal,
		history: history,
		stats:   stats,
		out:     out,
		colours: colours,
		limit:   limit,
	}
	s.commands = map[string]command{
		"create":   {usage: "create <creator> <color> <name...>", args: 3, run: s.create},
		"add":      {usage: "add <user> <room>", args: 2, run: s.add},
		"remove":   {usage: "remove <user> [room]", args: 1, run: s.remove},
		"transfer": {usage: "transfer <user> <source> <destination>", args: 3, run: s.transfer},
		"move":     {usage: "move <user> <room>", args: 2, run: s.move},
		"delete":   {usage: "delete <requester> <room>", args: 2, run: s.delete},
		"rescue":   {usage: "rescue <user>", args: 1, run: s.rescue},
		"where":    {usage: "where <user>", args: 1, run: s.where},
		"mine":     {usage: "mine <user>", args: 1, run: s.mine},
		"rooms":    {usage: "rooms", run: s.rooms},
		"stranded": {usage: "stranded", run: s.stranded},
		"journal":  {usage: "journal [user]", run: s.journalEntries},
		"history":  {usage: "history <user>", args: 1, run: s.placements},
		"stats":    {usage: "stats", run: s.printStats},
		"help":     {usage: "help", run: s.help},
	}
	return s
}

// Run reads commands until input is exhausted, "quit" is read or ctx is done.
// A failing command is reported and the shell carries on.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.prompt()
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return nil
		}
		if line != "" {
			if err := s.Execute(line); err != nil {
				s.failure(err)
			}
		}
		s.prompt()
	}
	return scanner.Err()
}

// Execute runs a single command line
func (s *Shell) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, ok := s.commands[fields[0]]
	if !ok {
		return fmt.Errorf("%w: %s", roomerrors.ErrUnknownCommand, fields[0])
	}
	args := fields[1:]
	if len(args) < cmd.args {
		return fmt.Errorf("%w, usage: %s", roomerrors.ErrMissingArguments, cmd.usage)
	}
	s.log.Debug("Executing command", "command", fields[0], "args", len(args))
	return cmd.run(args)
}

func (s *Shell) prompt() {
	fmt.Fprint(s.out, Prompt)
}

func (s *Shell) success(format string, a ...any) {
	msg := fmt.Sprintf(format, a...)
	if s.colours {
		msg = color.FgGreen.Render(msg)
	}
	fmt.Fprintln(s.out, msg)
}

func (s *Shell) failure(err error) {
	msg := "error: " + err.Error()
	if s.colours {
		if errors.Is(err, roomerrors.ErrUserInLimbo) {
			msg = color.New(color.BgRed, color.FgWhite).Render(msg)
		} else {
			msg = color.FgRed.Render(msg)
		}
	}
	fmt.Fprintln(s.out, msg)
}

func parseRoom(arg string) (domain.RoomID, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return domain.NoRoom, fmt.Errorf("%w: room %q is not a number", roomerrors.ErrInvalidArgument, arg)
	}
	return domain.RoomID(id), nil
}

func (s *Shell) create(args []string) error {
	id, err := s.service.CreateRoom(domain.CreateRoomCommand{
		CreatorID:       domain.UserID(args[0]),
		BackgroundColor: args[1],
		Name:            strings.Join(args[2:], " "),
	})
	if err != nil {
		return err
	}
	s.success("room %d created", id)
	return nil
}

func (s *Shell) add(args []string) error {
	room, err := parseRoom(args[1])
	if err != nil {
		return err
	}
	if err := s.service.AddUser(domain.AddUserCommand{UserID: domain.UserID(args[0]), RoomID: room}); err != nil {
		return err
	}
	s.success("%s added to room %d", args[0], room)
	return nil
}

func (s *Shell) remove(args []string) error {
	cmd := domain.RemoveUserCommand{UserID: domain.UserID(args[0])}
	if len(args) > 1 {
		room, err := parseRoom(args[1])
		if err != nil {
			return err
		}
		cmd.RoomID = room
	}
	if err := s.service.RemoveUser(cmd); err != nil {
		return err
	}
	if cmd.RoomID == 0 {
		s.success("%s removed from every room", args[0])
	} else {
		s.success("%s removed from room %d", args[0], cmd.RoomID)
	}
	return nil
}

func (s *Shell) transfer(args []string) error {
	source, err := parseRoom(args[1])
	if err != nil {
		return err
	}
	destination, err := parseRoom(args[2])
	if err != nil {
		return err
	}
	if err := s.service.TransferUser(domain.TransferUserCommand{
		UserID: domain.UserID(args[0]), Source: source, Destination: destination,
	}); err != nil {
		return err
	}
	s.success("%s transferred from room %d to room %d", args[0], source, destination)
	return nil
}

func (s *Shell) move(args []string) error {
	room, err := parseRoom(args[1])
	if err != nil {
		return err
	}
	if err := s.service.MoveUser(domain.MoveUserCommand{UserID: domain.UserID(args[0]), Destination: room}); err != nil {
		return err
	}
	s.success("%s moved to room %d", args[0], room)
	return nil
}

func (s *Shell) delete(args []string) error {
	room, err := parseRoom(args[1])
	if err != nil {
		return err
	}
	if err := s.service.DeleteRoom(domain.DeleteRoomCommand{RequesterID: domain.UserID(args[0]), RoomID: room}); err != nil {
		return err
	}
	s.success("room %d deleted", room)
	return nil
}

func (s *Shell) rescue(args []string) error {
	if err := s.service.Rescue(domain.UserID(args[0])); err != nil {
		return err
	}
	s.success("%s rescued to room %d", args[0], domain.MainRoomID)
	return nil
}

func (s *Shell) where(args []string) error {
	view, ok := s.service.WhereIs(domain.UserID(args[0]))
	if !ok {
		s.success("%s is in no room", args[0])
		return nil
	}
	s.success("%s is in room %d (%s)", args[0], view.ID, view.Name)
	return nil
}

func (s *Shell) newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(s.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func (s *Shell) rooms(_ []string) error {
	s.roomTable(s.service.Rooms())
	return nil
}

func (s *Shell) mine(args []string) error {
	rooms := s.service.CreatedBy(domain.UserID(args[0]))
	if len(rooms) == 0 {
		s.success("%s created no room", args[0])
		return nil
	}
	s.roomTable(rooms)
	return nil
}

func (s *Shell) roomTable(rooms []domain.RoomView) {
	table := s.newTable([]string{"ID", "Name", "Color", "Creator", "Users"})
	for _, r := range rooms {
		users := make([]string, 0, len(r.Users))
		for _, u := range r.Users {
			users = append(users, string(u))
		}
		table.Append([]string{
			strconv.Itoa(int(r.ID)), r.Name, r.BackgroundColor, string(r.CreatorID), strings.Join(users, ","),
		})
	}
	table.Render()
}

func (s *Shell) stranded(_ []string) error {
	users := s.service.Stranded()
	if len(users) == 0 {
		s.success("nobody is stranded")
		return nil
	}
	for _, u := range users {
		fmt.Fprintln(s.out, u)
	}
	return nil
}

func (s *Shell) journalEntries(args []string) error {
	if s.journal == nil {
		return fmt.Errorf("%w: journal is disabled", roomerrors.ErrInvalidArgument)
	}
	var (
		entries []storage.JournalEntry
		err     error
	)
	if len(args) > 0 {
		entries, err = s.journal.ForUser(args[0], s.limit)
	} else {
		entries, err = s.journal.Latest(s.limit)
	}
	if err != nil {
		return err
	}

	table := s.newTable([]string{"Time", "Type", "User", "Room", "Source", "Destination"})
	for _, e := range entries {
		table.Append([]string{
			e.At().Format("15:04:05.000"), e.Type, e.User,
			roomCell(e.Room), roomCell(e.Source), roomCell(e.Destination),
		})
	}
	table.Render()
	return nil
}

func (s *Shell) placements(args []string) error {
	if s.history == nil {
		return fmt.Errorf("%w: history is disabled", roomerrors.ErrInvalidArgument)
	}
	placements := s.history.History(domain.UserID(args[0]))
	if len(placements) == 0 {
		s.success("%s was never moved", args[0])
		return nil
	}

	table := s.newTable([]string{"Time", "Reason", "From", "Room"})
	for _, p := range placements {
		table.Append([]string{
			p.At.Format("15:04:05.000"), string(p.Reason), roomCell(int(p.From)), roomCell(int(p.Room)),
		})
	}
	table.Render()
	return nil
}

func roomCell(id int) string {
	if id <= 0 {
		return "-"
	}
	return strconv.Itoa(id)
}

func (s *Shell) printStats(_ []string) error {
	if s.stats == nil {
		return nil
	}
	stats := s.stats()
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	table := s.newTable([]string{"Metric", "Value"})
	for _, k := range keys {
		table.Append([]string{k, strconv.FormatUint(stats[k], 10)})
	}
	table.Render()
	return nil
}

func (s *Shell) help(_ []string) error {
	usages := make([]string, 0, len(s.commands))
	for _, c := range s.commands {
		usages = append(usages, c.usage)
	}
	sort.Strings(usages)
	for _, u := range usages {
		fmt.Fprintln(s.out, "  "+u)
	}
	fmt.Fprintln(s.out, "  quit")
	return nil
}
