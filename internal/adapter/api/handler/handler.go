package handler

import (
	"heritageloom/internal/rest"
	"heritageloom/internal/session"
	"heritageloom/internal/usecase"
)

var (
	authHandler    *AuthHandler
	productHandler *ProductHandler
	blogHandler    *BlogHandler
	serviceHandler *ServiceHandler
	inquiryHandler *InquiryHandler
	uploadHandler  *UploadHandler
)

func Setup(
	contentUseCase *usecase.ContentUseCase,
	sessionManager *session.Manager,
	uploader *rest.Uploader,
) {
	authHandler = NewAuthHandler(sessionManager)
	productHandler = NewProductHandler(contentUseCase)
	blogHandler = NewBlogHandler(contentUseCase)
	serviceHandler = NewServiceHandler(contentUseCase)
	inquiryHandler = NewInquiryHandler(contentUseCase)
	uploadHandler = NewUploadHandler(uploader)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetBlogHandler() *BlogHandler {
	return blogHandler
}

func GetServiceHandler() *ServiceHandler {
	return serviceHandler
}

func GetInquiryHandler() *InquiryHandler {
	return inquiryHandler
}

func GetUploadHandler() *UploadHandler {
	return uploadHandler
}
