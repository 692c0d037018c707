package dto

import "time"

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupResponseDTO struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

// ImageDTO is the full image projection used in listings and inside
// question details.
type ImageDTO struct {
	ID   uint   `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

// ImageSummaryDTO is the slimmer projection returned by the by-type
// listing.
type ImageSummaryDTO struct {
	ID  uint   `json:"id"`
	URL string `json:"url"`
}

type ImageListResponse struct {
	Images []ImageDTO `json:"images"`
}

type ImageTypeListResponse struct {
	Images []ImageSummaryDTO `json:"images"`
}

// MainImageResponse carries just the newest main image URL. The pointer is
// nil (and rendered as null) when no main image exists.
type MainImageResponse struct {
	Image *string `json:"image"`
}

type ImageUploadResponseDTO struct {
	Message  string `json:"message"`
	ID       uint   `json:"id"`
	URL      string `json:"url"`
	Filename string `json:"filename"`
	Type     string `json:"type"`
}

type ImageCreateResponseDTO struct {
	Message string `json:"message"`
	ImageID uint   `json:"image_id"`
}

// ChoiceDTO is the choice projection consumers rely on; the field set is
// part of the contract.
type ChoiceDTO struct {
	ID         uint   `json:"id"`
	Content    string `json:"content"`
	Sqe        int    `json:"sqe"`
	QuestionID uint   `json:"question_id"`
	IsActive   bool   `json:"is_active"`
}

type ChoiceListResponse struct {
	Choices []ChoiceDTO `json:"choices"`
}

type ChoiceCreateResponseDTO struct {
	Message  string `json:"message"`
	ChoiceID uint   `json:"choice_id"`
}

// QuestionDetailDTO is the read-side view of one active question with its
// active choices ordered by sqe.
type QuestionDetailDTO struct {
	ID      uint        `json:"id"`
	Title   string      `json:"title"`
	Sqe     int         `json:"sqe"`
	Image   *ImageDTO   `json:"image"`
	Choices []ChoiceDTO `json:"choices"`
}

type QuestionCountResponse struct {
	Total int64 `json:"total"`
}

type QuestionCreateResponseDTO struct {
	Message    string `json:"message"`
	QuestionID uint   `json:"question_id"`
}

type AnswerCreateResponseDTO struct {
	Message  string `json:"message"`
	AnswerID uint   `json:"answer_id"`
}

// AnswerDTO is the answer projection for the list endpoints.
type AnswerDTO struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	ChoiceID  uint      `json:"choice_id"`
	CreatedAt time.Time `json:"created_at"`
}
