package dto

// SignupDTO is the request body for user signup. Age and gender are
// constrained to the fixed brackets the survey reports on.
type SignupDTO struct {
	Name   string `json:"name" binding:"required"`
	Age    string `json:"age" binding:"required,oneof=10s 20s 30s 40s 50s 60s+"`
	Gender string `json:"gender" binding:"required,oneof=male female"`
	Email  string `json:"email" binding:"required,email"`
}

// QuestionCreateDTO creates a survey question. IsActive defaults to true
// when omitted.
type QuestionCreateDTO struct {
	Title    string `json:"title" binding:"required"`
	Sqe      int    `json:"sqe" binding:"required,min=1"`
	ImageID  *uint  `json:"image_id"`
	IsActive *bool  `json:"is_active"`
}

// ChoiceCreateDTO creates a choice under an existing question.
type ChoiceCreateDTO struct {
	Content    string `json:"content" binding:"required"`
	Sqe        int    `json:"sqe" binding:"required,min=1"`
	QuestionID uint   `json:"question_id" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

// AnswerCreateDTO is the single-answer create body.
type AnswerCreateDTO struct {
	UserID   *uint `json:"user_id" binding:"required"`
	ChoiceID *uint `json:"choice_id" binding:"required"`
}

// AnswerSubmitItemDTO is one element of the batch submit array. Fields are
// pointers so the service can tell a missing field from a zero value and
// report the offending item index.
type AnswerSubmitItemDTO struct {
	UserID   *uint `json:"user_id"`
	ChoiceID *uint `json:"choice_id"`
}

// ImageCreateDTO registers an image row by URL, without a file upload.
type ImageCreateDTO struct {
	URL  string `json:"url" binding:"required"`
	Type string `json:"type" binding:"required,oneof=main sub etc"`
}
