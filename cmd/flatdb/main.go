// Command flatdb is the interactive console for a flatdb database file. It
// consumes the engine only through the public operations of the top-level
// package and formats the returned names and rows for display.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/lmittmann/tint"

	"github.com/tuannm99/flatdb"
	"github.com/tuannm99/flatdb/internal/config"
)

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flatdb_history"
	}
	return filepath.Join(home, ".flatdb_history")
}

func main() {
	var (
		cfgPath  = flag.String("config", "", "yaml config file")
		filePath = flag.String("file", "", "database file path (overrides config)")
		histPath = flag.String("history", defaultHistoryPath(), "history file path")
		debug    = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))

	cfg := config.Default()
	if *cfgPath != "" {
		c, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	}
	path := cfg.File
	if *filePath != "" {
		path = *filePath
	}

	if err := flatdb.Init(path); err != nil {
		fmt.Fprintf(os.Stderr, "init: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "flatdb> ",
		HistoryFile:     *histPath,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	fmt.Printf("using %s\n", path)
	fmt.Println("type help for help")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return
		}
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		if args[0] == "exit" || args[0] == "quit" {
			return
		}
		path = exec(path, args)
	}
}

// exec dispatches one console command and returns the active file path,
// which only the use command changes. Errors are printed, never fatal.
func exec(path string, args []string) string {
	var err error
	switch cmd := args[0]; cmd {
	case "help":
		printHelp()
	case "use":
		if len(args) != 2 {
			err = errUsage("use <path>")
			break
		}
		if err = flatdb.Init(args[1]); err == nil {
			path = args[1]
			fmt.Printf("using %s\n", path)
		}
	case "tables":
		var names string
		if names, err = flatdb.TableNames(path); err == nil && names != "" {
			fmt.Println(names)
		}
	case "create":
		if len(args) < 3 {
			err = errUsage("create <table> <field:type>...")
			break
		}
		var fields []flatdb.Field
		if fields, err = parseFields(args[2:]); err == nil {
			err = flatdb.CreateTable(path, args[1], fields)
		}
	case "drop":
		if len(args) != 2 {
			err = errUsage("drop <table>")
			break
		}
		err = flatdb.DeleteTable(path, args[1])
	case "clear":
		if len(args) != 2 {
			err = errUsage("clear <table>")
			break
		}
		err = flatdb.ClearTable(path, args[1])
	case "clearall":
		err = flatdb.ClearAllTables(path)
	case "fields":
		if len(args) != 2 {
			err = errUsage("fields <table>")
			break
		}
		var names, types []string
		if names, err = flatdb.FieldNames(path, args[1]); err != nil {
			break
		}
		if types, err = flatdb.FieldTypes(path, args[1]); err != nil {
			break
		}
		for i := range names {
			fmt.Printf("%s (%s)\n", names[i], types[i])
		}
	case "rows":
		if len(args) != 2 {
			err = errUsage("rows <table>")
			break
		}
		var rows []string
		if rows, err = flatdb.ListRows(path, args[1]); err == nil {
			for i, r := range rows {
				fmt.Printf("%4d  %s\n", i+1, r)
			}
		}
	case "addfield":
		if len(args) != 3 && len(args) != 4 {
			err = errUsage("addfield <table> <field:type> [default]")
			break
		}
		var f flatdb.Field
		if f, err = parseField(args[2]); err != nil {
			break
		}
		def := ""
		if len(args) == 4 {
			def = args[3]
		}
		err = flatdb.AddField(path, args[1], f, def)
	case "delfield":
		if len(args) != 3 {
			err = errUsage("delfield <table> <field>")
			break
		}
		err = flatdb.RemoveField(path, args[1], args[2])
	case "find":
		if len(args) != 4 {
			err = errUsage("find <table> <field> <value>")
			break
		}
		var indices []int
		if indices, err = flatdb.FindRows(path, args[1], args[2], args[3]); err == nil {
			if len(indices) == 0 {
				fmt.Println("no match")
				break
			}
			for _, i := range indices {
				fmt.Println(i)
			}
		}
	case "set":
		if len(args) != 5 {
			err = errUsage("set <table> <field> <row> <value>")
			break
		}
		var row int
		if row, err = strconv.Atoi(args[3]); err == nil {
			err = flatdb.UpdateValue(path, args[1], args[2], row, args[4])
		}
	case "setall":
		if len(args) != 4 {
			err = errUsage("setall <table> <field> <value>")
			break
		}
		err = flatdb.UpdateAll(path, args[1], args[2], args[3])
	case "delrows":
		if len(args) < 3 {
			err = errUsage("delrows <table> <row>...")
			break
		}
		var indices []int
		if indices, err = parseInts(args[2:]); err == nil {
			err = flatdb.DeleteRows(path, args[1], indices)
		}
	case "insert":
		if len(args) < 2 {
			err = errUsage("insert <table> <value>...")
			break
		}
		err = flatdb.AddRow(path, args[1], args[2:])
	case "sort":
		if len(args) != 3 {
			err = errUsage("sort <table> <field>")
			break
		}
		err = flatdb.SortRows(path, args[1], args[2])
	case "sum", "mean":
		if len(args) != 3 {
			err = errUsage(cmd + " <table> <field>")
			break
		}
		var res string
		if cmd == "sum" {
			res, err = flatdb.Sum(path, args[1], args[2])
		} else {
			res, err = flatdb.Mean(path, args[1], args[2])
		}
		if err == nil {
			fmt.Println(res)
		}
	default:
		err = fmt.Errorf("unknown command %q, type help for help", args[0])
	}
	if err != nil {
		fmt.Printf("error: %v\n", err)
	}
	return path
}

func errUsage(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}

// parseField parses "name:type", e.g. "age:int".
func parseField(s string) (flatdb.Field, error) {
	name, typ, ok := strings.Cut(s, ":")
	if !ok || name == "" {
		return flatdb.Field{}, fmt.Errorf("bad field %q, want name:type", s)
	}
	return flatdb.Field{Name: name, Type: flatdb.TypeTag(typ)}, nil
}

func parseFields(specs []string) ([]flatdb.Field, error) {
	fields := make([]flatdb.Field, len(specs))
	for i, s := range specs {
		f, err := parseField(s)
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}

func parseInts(args []string) ([]int, error) {
	out := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("bad row index %q", a)
		}
		out[i] = n
	}
	return out, nil
}

func printHelp() {
	fmt.Println(`commands:
  tables                                 list table names
  create <table> <field:type>...        create a table (types: int float string bool)
  drop <table>                          delete a table
  clear <table>                         delete all rows, keep the schema
  clearall                              delete every table
  fields <table>                        list fields and types
  rows <table>                          list rows
  addfield <table> <field:type> [def]   add a field, backfilling def or a zero value
  delfield <table> <field>              remove a field and its column
  find <table> <field> <value>          row indices where field equals value
  set <table> <field> <row> <value>     update one cell
  setall <table> <field> <value>        update a whole column
  delrows <table> <row>...              delete rows by index
  insert <table> <value>...             add a row
  sort <table> <field>                  sort rows by a field
  sum <table> <field>                   sum of a numeric field
  mean <table> <field>                  mean of a numeric field
  use <path>                            switch the active database file
  help, exit, quit`)
}
