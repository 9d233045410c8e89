package dto

// ErrorResponseDTO는 공통 에러 응답 형식을 통일하기 위한 DTO이다.
type ErrorResponseDTO struct {
	Error string `json:"error" example:"Failed to process ingredients"`
}

// MessageResponseDTO는 검증 실패처럼 사용자에게 안내 문구를 돌려줄 때 사용한다.
type MessageResponseDTO struct {
	Message string `json:"message" example:"a list of ingredients is required"`
}
