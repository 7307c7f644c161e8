package service

import (
	"context"

	"contactbook-backend/internal/errors"
	"contactbook-backend/internal/model"
	"contactbook-backend/internal/repository/interfaces"
	"contactbook-backend/internal/util"

	"go.uber.org/zap"
)

// ContactService 处理与联系人相关的业务逻辑
type ContactService struct {
	contactRepo interfaces.ContactRepository
	pageSize    int // 搜索未指定 per_page 时的默认值
}

// NewContactService 创建一个新的 ContactService 实例
func NewContactService(contactRepo interfaces.ContactRepository, pageSize int) *ContactService {
	return &ContactService{contactRepo: contactRepo, pageSize: pageSize}
}

// CheckContactMustExist 联系人守卫：确认联系人存在且属于指定用户
// 不存在和属于其他用户统一返回 ErrNotFound，不泄露跨用户的存在性
func (s *ContactService) CheckContactMustExist(ctx context.Context, username string, contactID int) (*model.Contact, error) {
	contact, err := s.contactRepo.FindByIDAndUsername(ctx, contactID, username)
	if err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "查询联系人失败", err)
	}
	if contact == nil {
		return nil, errors.New(errors.ErrNotFound, "contact is not found")
	}
	return contact, nil
}

// Create 为当前用户创建联系人
func (s *ContactService) Create(ctx context.Context, user *model.User, request model.CreateContactRequest) (*model.ContactResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	contact := &model.Contact{
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Phone:     request.Phone,
		Username:  user.Username,
	}

	if err := s.contactRepo.Create(ctx, contact); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "创建联系人失败", err)
	}

	return model.ToContactResponse(contact), nil
}

// Get 返回当前用户的单个联系人
func (s *ContactService) Get(ctx context.Context, user *model.User, contactID int) (*model.ContactResponse, error) {
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	contact, err := s.CheckContactMustExist(ctx, user.Username, contactID)
	if err != nil {
		return nil, err
	}

	return model.ToContactResponse(contact), nil
}

// Update 更新当前用户的联系人
func (s *ContactService) Update(ctx context.Context, user *model.User, request model.UpdateContactRequest) (*model.ContactResponse, error) {
	if err := util.ValidateStruct(request); err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	contact, err := s.CheckContactMustExist(ctx, user.Username, request.ID)
	if err != nil {
		return nil, err
	}

	contact.FirstName = request.FirstName
	contact.LastName = request.LastName
	contact.Email = request.Email
	contact.Phone = request.Phone

	if err := s.contactRepo.Update(ctx, contact); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "更新联系人失败", err)
	}

	return model.ToContactResponse(contact), nil
}

// Remove 删除当前用户的联系人，其下的地址随之级联删除
func (s *ContactService) Remove(ctx context.Context, user *model.User, contactID int) error {
	if user == nil {
		return errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	contact, err := s.CheckContactMustExist(ctx, user.Username, contactID)
	if err != nil {
		return err
	}

	if err := s.contactRepo.Delete(ctx, contact.ID); err != nil {
		return errors.Wrap(errors.ErrDatabase, "删除联系人失败", err)
	}

	util.Logger.Info("联系人已删除",
		zap.Int("contact_id", contact.ID),
		zap.String("username", user.Username))
	return nil
}

// Search 在当前用户的联系人中搜索，返回分页结果
func (s *ContactService) Search(ctx context.Context, user *model.User, request model.SearchContactRequest) ([]*model.ContactResponse, *model.Paging, error) {
	// 未提供的分页参数先填充默认值，非法值留给校验拒绝
	if request.Page == 0 {
		request.Page = 1
	}
	if request.PerPage == 0 {
		request.PerPage = s.pageSize
	}
	if err := util.ValidateStruct(request); err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, errors.New(errors.ErrUnauthenticated, "unauthorized")
	}

	filters := model.ContactFilters{
		Name:  request.Name,
		Email: request.Email,
		Phone: request.Phone,
	}

	contacts, total, err := s.contactRepo.Search(ctx, user.Username, filters, request.Page, request.PerPage)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrDatabase, "搜索联系人失败", err)
	}

	responses := make([]*model.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		responses = append(responses, model.ToContactResponse(contact))
	}

	paging := &model.Paging{
		CurrentPage: request.Page,
		PerPage:     request.PerPage,
		TotalPage:   (total + request.PerPage - 1) / request.PerPage,
	}

	return responses, paging, nil
}

type ContactServiceInterface interface {
	CheckContactMustExist(ctx context.Context, username string, contactID int) (*model.Contact, error)
	Create(ctx context.Context, user *model.User, request model.CreateContactRequest) (*model.ContactResponse, error)
	Get(ctx context.Context, user *model.User, contactID int) (*model.ContactResponse, error)
	Update(ctx context.Context, user *model.User, request model.UpdateContactRequest) (*model.ContactResponse, error)
	Remove(ctx context.Context, user *model.User, contactID int) error
	Search(ctx context.Context, user *model.User, request model.SearchContactRequest) ([]*model.ContactResponse, *model.Paging, error)
}

// 确保 ContactService 实现了 ContactServiceInterface
var _ ContactServiceInterface = (*ContactService)(nil)
