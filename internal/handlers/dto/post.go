package dto

type CreatePostRequest struct {
	Content string `json:"content" binding:"required,max=280"`
	ReplyTo string `json:"replyTo"`
}
