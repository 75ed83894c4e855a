package grep

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

var ErrNotEnoughArgs = errors.New("not enough arguments")

type Config struct {
	Query      string
	FilePath   string
	IgnoreCase bool
}

// NewConfig reads QUERY FILE [IGNORE_CASE] from args. Case is ignored when
// the IGNORE_CASE environment variable is "1", or else when the optional third
// argument is "1".
func NewConfig(args []string) (*Config, error) {
	if len(args) < 2 {
		return nil, ErrNotEnoughArgs
	}
	ignoreCase := os.Getenv("IGNORE_CASE") == "1"
	if !ignoreCase && len(args) > 2 {
		ignoreCase = args[2] == "1"
	}
	return &Config{Query: args[0], FilePath: args[1], IgnoreCase: ignoreCase}, nil
}

// Run writes every line of the configured file that matches the query.
func Run(conf *Config, w io.Writer) error {
	contents, err := os.ReadFile(conf.FilePath)
	if err != nil {
		return errors.Wrapf(err, "read %s", conf.FilePath)
	}

	var lines []string
	if conf.IgnoreCase {
		lines = SearchCaseInsensitive(conf.Query, string(contents))
	} else {
		lines = Search(conf.Query, string(contents))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func Search(query, contents string) []string {
	var res []string
	for _, line := range lines(contents) {
		if strings.Contains(line, query) {
			res = append(res, line)
		}
	}
	return res
}

func SearchCaseInsensitive(query, contents string) []string {
	query = strings.ToLower(query)
	var res []string
	for _, line := range lines(contents) {
		if strings.Contains(strings.ToLower(line), query) {
			res = append(res, line)
		}
	}
	return res
}

// lines splits on "\n", dropping a trailing "\r" and the empty piece after a
// final newline.
func lines(contents string) []string {
	contents = strings.TrimSuffix(contents, "\n")
	if contents == "" {
		return nil
	}
	ls := strings.Split(contents, "\n")
	for i, l := range ls {
		ls[i] = strings.TrimSuffix(l, "\r")
	}
	return ls
}
