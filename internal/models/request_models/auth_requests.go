package request_models

import "strings"

type RegistrationRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	DisplayName string `json:"display_name"`
	Phone       string `json:"phone"`
	UID         string `json:"uid"`
	DeviceID    string `json:"device_id"`
}

// Names splits the display name into first and second name on the first
// space. A single word becomes the first name only.
func (r *RegistrationRequest) Names() (string, string) {
	return splitDisplayName(r.DisplayName)
}

type AuthenticationRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type ThirdPartyRequest struct {
	Email          string `json:"email" binding:"required,email"`
	UID            string `json:"uid" binding:"required"`
	DisplayName    string `json:"display_name"`
	ProfilePicture string `json:"profile_picture"`
	DeviceID       string `json:"device_id"`
}

func (r *ThirdPartyRequest) Names() (string, string) {
	return splitDisplayName(r.DisplayName)
}

// ProfileFields collects the profile columns a provider sign-in carries,
// so a returning user's stored profile follows the provider data.
func (r *ThirdPartyRequest) ProfileFields() map[string]any {
	fields := map[string]any{}
	if r.DisplayName != "" {
		firstName, secondName := r.Names()
		fields["first_name"] = firstName
		fields["second_name"] = secondName
	}
	if r.ProfilePicture != "" {
		fields["profile_picture"] = r.ProfilePicture
	}
	return fields
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type UpdateUserRequest struct {
	FirstName      *string `json:"first_name"`
	SecondName     *string `json:"second_name"`
	MiddleName     *string `json:"middle_name"`
	Phone          *string `json:"phone"`
	ProfilePicture *string `json:"profile_picture"`
	Birthday       *Date   `json:"birthday"`
}

// Fields collects the set fields keyed by column name. Unset fields are
// left out so the update never clobbers them.
func (r *UpdateUserRequest) Fields() map[string]any {
	fields := map[string]any{}
	if r.FirstName != nil {
		fields["first_name"] = *r.FirstName
	}
	if r.SecondName != nil {
		fields["second_name"] = *r.SecondName
	}
	if r.MiddleName != nil {
		fields["middle_name"] = *r.MiddleName
	}
	if r.Phone != nil {
		fields["phone"] = *r.Phone
	}
	if r.ProfilePicture != nil {
		fields["profile_picture"] = *r.ProfilePicture
	}
	if r.Birthday != nil {
		fields["birthday"] = r.Birthday.Time
	}
	return fields
}

func splitDisplayName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ""
	}
	parts := strings.SplitN(name, " ", 2)
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], parts[1]
}
