package service

import (
	"context"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/repository/interfaces"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"
)

// AddressService 处理与地址相关的业务逻辑
// 所有操作先经过联系人守卫，再经过地址守卫，构成两级所有权校验
type AddressService struct {
	addressRepo    interfaces.AddressRepository
	contactService ContactServiceInterface
}

// NewAddressService 创建一个新的 AddressService 实例
func NewAddressService(addressRepo interfaces.AddressRepository, contactService ContactServiceInterface) *AddressService {
	return &AddressService{
		addressRepo:    addressRepo,
		contactService: contactService,
	}
}

// checkAddressMustExist 地址守卫：确认地址存在且属于指定联系人
// 调用方必须先通过联系人守卫确认联系人归属
func (s *AddressService) checkAddressMustExist(ctx context.Context, contactID, addressID int) (*model.Address, error) {
	address, err := s.addressRepo.FindByIDAndContactID(ctx, addressID, contactID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询地址失败", err)
	}
	if address == nil {
		return nil, errors.New(errors.ErrNotFound, "address is not found")
	}
	return address, nil
}

// Create 在当前用户的联系人下创建地址
func (s *AddressService) Create(ctx context.Context, user *model.User, request model.CreateAddressRequest) (*model.AddressResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if _, err := s.contactService.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address := &model.Address{
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		Country:    request.Country,
		PostalCode: request.PostalCode,
		ContactID:  request.ContactID,
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建地址失败", err)
	}

	return model.ToAddressResponse(address), nil
}

// Get 返回联系人下的单个地址
func (s *AddressService) Get(ctx context.Context, user *model.User, request model.GetAddressRequest) (*model.AddressResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if _, err := s.contactService.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressMustExist(ctx, request.ContactID, request.AddressID)
	if err != nil {
		return nil, err
	}

	return model.ToAddressResponse(address), nil
}

// List 返回联系人下的全部地址
func (s *AddressService) List(ctx context.Context, user *model.User, contactID int) ([]*model.AddressResponse, error) {
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if _, err := s.contactService.CheckContactMustExist(ctx, user.Username, contactID); err != nil {
		return nil, err
	}

	addresses, err := s.addressRepo.ListByContactID(ctx, contactID)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询地址列表失败", err)
	}

	responses := make([]*model.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, model.ToAddressResponse(address))
	}
	return responses, nil
}

// Update 更新联系人下的地址
func (s *AddressService) Update(ctx context.Context, user *model.User, request model.UpdateAddressRequest) (*model.AddressResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if _, err := s.contactService.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return nil, err
	}

	address, err := s.checkAddressMustExist(ctx, request.ContactID, request.ID)
	if err != nil {
		return nil, err
	}

	address.Street = request.Street
	address.City = request.City
	address.Province = request.Province
	address.Country = request.Country
	address.PostalCode = request.PostalCode

	if err := s.addressRepo.Update(ctx, address); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新地址失败", err)
	}

	return model.ToAddressResponse(address), nil
}

// Remove 删除联系人下的地址
func (s *AddressService) Remove(ctx context.Context, user *model.User, request model.RemoveAddressRequest) error {
	if err := util.ValidateStruct(request); err != nil {
		return err
	}
	if user == nil {
		return errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	if _, err := s.contactService.CheckContactMustExist(ctx, user.Username, request.ContactID); err != nil {
		return err
	}

	address, err := s.checkAddressMustExist(ctx, request.ContactID, request.AddressID)
	if err != nil {
		return err
	}

	if err := s.addressRepo.Delete(ctx, address.ID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除地址失败", err)
	}

	util.Logger.Info("地址已删除",
		zap.Int("address_id", address.ID),
		zap.Int("contact_id", request.ContactID))
	return nil
}

type AddressServiceInterface interface {
	Create(ctx context.Context, user *model.User, request model.CreateAddressRequest) (*model.AddressResponse, error)
	Get(ctx context.Context, user *model.User, request model.GetAddressRequest) (*model.AddressResponse, error)
	List(ctx context.Context, user *model.User, contactID int) ([]*model.AddressResponse, error)
	Update(ctx context.Context, user *model.User, request model.UpdateAddressRequest) (*model.AddressResponse, error)
	Remove(ctx context.Context, user *model.User, request model.RemoveAddressRequest) error
}

// 确保 AddressService 实现了 AddressServiceInterface
var _ AddressServiceInterface = (*AddressService)(nil)
