package models

import (
	"strconv"
	"time"
)

// Post is a single published message. UID/ReplyUID are what the store
// holds; Name and ReplyName are display fields resolved during hydration.
type Post struct {
	PID       string    `json:"pid"`
	UID       string    `json:"uid"`
	Name      string    `json:"name,omitempty"`
	Content   string    `json:"content"`
	ReplyUID  string    `json:"replyUid,omitempty"`
	ReplyName string    `json:"replyName,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AsMap encodes the stored fields of the post for a hash write. Display
// fields are derived on read and never stored.
func (p *Post) AsMap() map[string]string {
	fields := map[string]string{
		"uid":       p.UID,
		"content":   p.Content,
		"timestamp": strconv.FormatInt(p.Timestamp.Unix(), 10),
	}
	if p.ReplyUID != "" {
		fields["replyUid"] = p.ReplyUID
	}
	return fields
}

// PostFromMap decodes a post hash read back from the store.
func PostFromMap(pid string, fields map[string]string) *Post {
	post := &Post{
		PID:      pid,
		UID:      fields["uid"],
		Content:  fields["content"],
		ReplyUID: fields["replyUid"],
	}
	if ts, err := strconv.ParseInt(fields["timestamp"], 10, 64); err == nil {
		post.Timestamp = time.Unix(ts, 0)
	}
	return post
}
