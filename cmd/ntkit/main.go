package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/semweb-go/ntkit/internal/storage"
	"github.com/semweb-go/ntkit/pkg/rdf"
	"github.com/semweb-go/ntkit/pkg/store"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ntkit <command> [args]")
		fmt.Println("Commands:")
		fmt.Println("  name <url>...              - Print the resource name of each URL")
		fmt.Println("  expand <file.nt>...        - Parse files and print resolved nodes")
		fmt.Println("  dedup <in.nt> <out.nt|->   - Copy statements, dropping duplicates")
		fmt.Println("  import <dbpath> <file.nt>... - Import statements into a database")
		fmt.Println("  count <dbpath>             - Print the number of stored statements")
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "name":
		if len(os.Args) < 3 {
			fmt.Println("Usage: ntkit name <url>...")
			os.Exit(1)
		}
		runName(os.Args[2:])
	case "expand":
		if len(os.Args) < 3 {
			fmt.Println("Usage: ntkit expand <file.nt>...")
			os.Exit(1)
		}
		runExpand(os.Args[2:])
	case "dedup":
		if len(os.Args) < 4 {
			fmt.Println("Usage: ntkit dedup <in.nt> <out.nt|->")
			os.Exit(1)
		}
		runDedup(os.Args[2], os.Args[3])
	case "import":
		if len(os.Args) < 4 {
			fmt.Println("Usage: ntkit import <dbpath> <file.nt>...")
			os.Exit(1)
		}
		runImport(os.Args[2], os.Args[3:])
	case "count":
		if len(os.Args) < 3 {
			fmt.Println("Usage: ntkit count <dbpath>")
			os.Exit(1)
		}
		runCount(os.Args[2])
	default:
		fmt.Printf("Unknown command: %s\n", command)
		os.Exit(1)
	}
}

func runName(urls []string) {
	for _, url := range urls {
		fmt.Println(rdf.ResourceName(url))
	}
}

func runExpand(paths []string) {
	// One reader for all files, so prefixes declared in an earlier file
	// resolve names in later ones.
	reader := rdf.NewReader()
	for _, path := range paths {
		it, err := reader.ParseFile(path)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}
		for it.Next() {
			stmt := it.Statement()
			fmt.Printf("%s\t%s\t%s\n",
				formatNode(stmt.Subject),
				formatNode(stmt.Relation),
				formatNode(stmt.Object))
		}
		if err := it.Err(); err != nil {
			log.Fatalf("Failed to parse: %v", err)
		}
		it.Close()
	}
}

func formatNode(n rdf.Node) string {
	return n.Tag + "\t" + n.Text
}

func runDedup(inPath, outPath string) {
	in, err := os.Open(inPath)
	if err != nil {
		log.Fatalf("Failed to open input: %v", err)
	}
	defer in.Close()

	var writer *rdf.Writer
	if outPath == "-" {
		writer = rdf.NewWriter(os.Stdout)
	} else {
		writer, err = rdf.CreateFileWriter(outPath)
		if err != nil {
			log.Fatalf("Failed to create output: %v", err)
		}
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		triple, err := parseRawStatement(line)
		if err != nil {
			log.Fatalf("%s:%d: %v", inPath, lineno, err)
		}
		if err := writer.Write(triple); err != nil {
			log.Fatalf("%s:%d: failed to write: %v", inPath, lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("Failed to read input: %v", err)
	}
	if err := writer.Close(); err != nil {
		log.Fatalf("Failed to close output: %v", err)
	}
}

// parseRawStatement splits a statement line of bracketed URL tokens
// without resolving or decoding them, for verbatim re-emission.
func parseRawStatement(line string) (rdf.Triple, error) {
	fields := strings.Split(line, " ")
	if len(fields) != 4 || fields[3] != "." {
		return rdf.Triple{}, fmt.Errorf("not a statement line: %q", line)
	}
	tokens := make([]string, 3)
	for i, field := range fields[:3] {
		if !strings.HasPrefix(field, "<") || !strings.HasSuffix(field, ">") {
			return rdf.Triple{}, fmt.Errorf("not a bracketed URL token: %q", field)
		}
		tokens[i] = field[1 : len(field)-1]
	}
	return rdf.Triple{Subject: tokens[0], Relation: tokens[1], Object: tokens[2]}, nil
}

func runImport(dbPath string, paths []string) {
	badgerStorage, err := storage.NewBadgerStorage(dbPath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	statementStore := store.NewStatementStore(badgerStorage)
	defer statementStore.Close()

	const batchSize = 1000

	reader := rdf.NewReader()
	total, inserted := 0, 0
	for _, path := range paths {
		it, err := reader.ParseFile(path)
		if err != nil {
			log.Fatalf("Failed to open input: %v", err)
		}

		batch := make([]rdf.Statement, 0, batchSize)
		flush := func() {
			if len(batch) == 0 {
				return
			}
			n, err := statementStore.InsertBatch(batch)
			if err != nil {
				log.Fatalf("Failed to insert: %v", err)
			}
			total += len(batch)
			inserted += n
			batch = batch[:0]
		}

		for it.Next() {
			batch = append(batch, it.Statement())
			if len(batch) == batchSize {
				flush()
			}
		}
		if err := it.Err(); err != nil {
			log.Fatalf("Failed to parse: %v", err)
		}
		it.Close()
		flush()
	}

	fmt.Printf("Imported %d statements (%d new)\n", total, inserted)
}

func runCount(dbPath string) {
	badgerStorage, err := storage.NewBadgerStorage(dbPath)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	statementStore := store.NewStatementStore(badgerStorage)
	defer statementStore.Close()

	count, err := statementStore.Count()
	if err != nil {
		log.Fatalf("Failed to count statements: %v", err)
	}
	fmt.Println(count)
}
