package database

// Key-space layout. Kept bit-for-bit compatible with the original retwis
// scheme so an existing store can be pointed at directly.
const (
	keyGlobalUID = "global:uid" // counter: next user id
	keyGlobalPID = "global:pid" // counter: next post id
	keyUsers     = "users"      // list: usernames, append order
	keyTimeline  = "timeline"   // list: pids, newest first
)

func userKey(uid string) string      { return "uid:" + uid }
func nameUIDKey(name string) string  { return "user:" + name + ":uid" }
func uidAuthKey(uid string) string   { return "uid:" + uid + ":auth" }
func authKey(token string) string    { return "auth:" + token }
func followingKey(uid string) string { return "uid:" + uid + ":following" }
func followersKey(uid string) string { return "uid:" + uid + ":followers" }
func postsKey(uid string) string     { return "posts:" + uid }
func mentionsKey(uid string) string  { return "uid:" + uid + ":mentions" }
func postKey(pid string) string      { return "pid:" + pid }
