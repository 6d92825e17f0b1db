// Package entity holds the records managed by the storefront backend. The
// client never owns these: every value is a transient copy of server state,
// refetched after any write.
package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID is a server-assigned integer identifier. The backend serializes ids
// inconsistently (sometimes 5, sometimes "5"), so decoding accepts both.
type ID int64

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*id = 0
		return nil
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return err
	}
	*id = ID(n)
	return nil
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ImageList tolerates the backend returning either a JSON array of URLs or a
// single bare string, normalizing both to a slice.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*l = nil
		return nil
	}
	if data[0] == '[' {
		var urls []string
		if err := json.Unmarshal(data, &urls); err != nil {
			return err
		}
		*l = urls
		return nil
	}
	var single string
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single == "" {
		*l = nil
		return nil
	}
	*l = ImageList{single}
	return nil
}
