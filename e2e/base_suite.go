package e2e

import (
	"bytes"
	"fmt"
	"strings"

	"room-lab/domain"
	"room-lab/moderation"
	"room-lab/runtime"
	"room-lab/services"
	"room-lab/ui"

	"github.com/gookit/color"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/suite"
)

// BaseShellSuite drives a fresh manager through the text shell, the way a user would
type BaseShellSuite struct {
	suite.Suite
	Config  Config
	Manager *runtime.Manager
	shell   *ui.Shell
	out     *bytes.Buffer
}

// SetupSuite loads the environment configuration before running tests
func (s *BaseShellSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
}

func (s *BaseShellSuite) SetupTest() {
	log := logs.GetLoggerFromString(s.Config.LogLevel)
	s.Manager = runtime.NewManager(log, runtime.NewRoomStore())
	moderator, err := moderation.NewModerator([]string{"badger"}, '*', log)
	s.Require().NoError(err)
	s.out = &bytes.Buffer{}
	service := services.NewRoomService(log, s.Manager, &moderator)
	s.shell = ui.NewShell(log, service, nil, nil, nil, s.out, false, 10)
}

// Step prints a header for a scenario step in the test logs
func (s *BaseShellSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Run executes one command line and returns what the shell answered
func (s *BaseShellSuite) Run(line string) (string, error) {
	s.out.Reset()
	err := s.shell.Execute(line)
	answer := strings.TrimSpace(s.out.String())
	if s.Config.Verbose {
		s.T().Logf("> %s\n%s", line, answer)
	}
	return answer, err
}

func (s *BaseShellSuite) MustRun(line string) string {
	answer, err := s.Run(line)
	s.Require().NoError(err, line)
	return answer
}

// AssertSinglePlacement checks that no user appears in two rooms
func (s *BaseShellSuite) AssertSinglePlacement() {
	seen := make(map[domain.UserID]domain.RoomID)
	for _, room := range s.Manager.Rooms() {
		for _, user := range room.Users {
			previous, ok := seen[user]
			s.Require().False(ok, "user %s in rooms %d and %d", user, previous, room.ID)
			seen[user] = room.ID
		}
	}
}
