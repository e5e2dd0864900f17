package service

import (
	"promptmaster_backend/internal/model"
	"promptmaster_backend/internal/repository"
)

type CertificateService struct {
	CertificateRepo *repository.CertificateRepository
}

func NewCertificateService(certificateRepo *repository.CertificateRepository) *CertificateService {
	return &CertificateService{CertificateRepo: certificateRepo}
}

func (s *CertificateService) ListForUser(userID uint) ([]model.Certificate, error) {
	return s.CertificateRepo.FindByUserID(userID)
}
