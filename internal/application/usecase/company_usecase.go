package usecase

import (
	"time"

	"github.com/jhoicas/Gestion-api/internal/application/docgen"
	"github.com/jhoicas/Gestion-api/internal/application/dto"
	"github.com/jhoicas/Gestion-api/internal/domain"
	"github.com/jhoicas/Gestion-api/internal/domain/entity"
	"github.com/jhoicas/Gestion-api/internal/domain/repository"
)

// ProfileWriter persiste la identidad documental de la empresa.
type ProfileWriter interface {
	Put(companyID string, identity *docgen.CompanyIdentity) error
}

// CompanyUseCase casos de uso para la empresa del token.
type CompanyUseCase struct {
	repo     repository.CompanyRepository
	profiles ProfileWriter
}

// NewCompanyUseCase construye el caso de uso.
func NewCompanyUseCase(repo repository.CompanyRepository, profiles ProfileWriter) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, profiles: profiles}
}

// Get obtiene la empresa del token.
func (uc *CompanyUseCase) Get(companyID string) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	return companyToResponse(company), nil
}

// Update actualiza los datos registrales de la empresa.
func (uc *CompanyUseCase) Update(companyID string, in dto.UpdateCompanyRequest) (*dto.CompanyResponse, error) {
	company, err := uc.repo.GetByID(companyID)
	if err != nil {
		return nil, err
	}
	if company == nil {
		return nil, domain.ErrNotFound
	}
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}

	company.Name = in.Name
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.LogoURL = in.LogoURL
	company.UpdatedAt = time.Now()

	if err := uc.repo.Update(company); err != nil {
		return nil, err
	}
	return companyToResponse(company), nil
}

// UpdateProfile guarda la identidad que se imprime en los documentos. Es
// independiente de los datos registrales: la empresa decide qué nombre,
// contactos y logo aparecen en sus facturas.
func (uc *CompanyUseCase) UpdateProfile(companyID string, in dto.CompanyProfileRequest) error {
	return uc.profiles.Put(companyID, &docgen.CompanyIdentity{
		Name:      in.Name,
		Email:     in.Email,
		Phones:    in.Phones,
		Addresses: in.Addresses,
		LogoURL:   in.LogoURL,
	})
}

func companyToResponse(c *entity.Company) *dto.CompanyResponse {
	return &dto.CompanyResponse{
		ID:      c.ID,
		Name:    c.Name,
		TaxID:   c.TaxID,
		Address: c.Address,
		Phone:   c.Phone,
		Email:   c.Email,
		LogoURL: c.LogoURL,
		Status:  c.Status,
	}
}
