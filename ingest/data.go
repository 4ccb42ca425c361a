package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/twitterverse/core"
)

// ReadDatabase parses a data file.
//
// The file is a sequence of records, each laid out as:
//
//	handle
//	name
//	location
//	website
//	bio line … (zero or more)
//	ENDBIO
//	followed handle … (zero or more)
//	END
//
// A blank line where a handle is expected, or the end of input, ends the
// file. Bio lines are joined with "\n". Every line is trimmed. A handle that
// appears twice keeps its last record.
func ReadDatabase(r io.Reader) (*core.Database, error) {
	lr := newLineReader(r)
	db := core.NewDatabase()
	for {
		handle, ok, err := lr.next()
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		if !ok || handle == "" {
			return db, nil
		}
		u, err := readUser(lr, handle)
		if err != nil {
			return nil, err
		}
		if err := db.AddUser(u); err != nil {
			return nil, fmt.Errorf("ingest: line %d: %w", lr.line, err)
		}
	}
}

// readUser reads the remainder of one record after its handle line.
func readUser(lr *lineReader, handle string) (*core.User, error) {
	u := &core.User{Handle: handle}
	var err error
	if u.Name, err = lr.must("name of " + handle); err != nil {
		return nil, err
	}
	if u.Location, err = lr.must("location of " + handle); err != nil {
		return nil, err
	}
	if u.Website, err = lr.must("website of " + handle); err != nil {
		return nil, err
	}
	bio, err := lr.until(markEndBio, "bio line")
	if err != nil {
		return nil, err
	}
	u.Bio = strings.Join(bio, "\n")
	if u.Following, err = lr.until(markEnd, "followed handle"); err != nil {
		return nil, err
	}
	if u.Following == nil {
		u.Following = []string{}
	}

	return u, nil
}

// ReadDatabaseFile opens path and parses it with ReadDatabase.
func ReadDatabaseFile(path string) (*core.Database, error) {
	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadDatabase(f)
}
