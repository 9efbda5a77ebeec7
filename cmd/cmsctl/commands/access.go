package commands

import (
	"context"
	"fmt"

	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/pkg/serverutils"
)

// ApproveEmailCmd implements the 'approve-email' command.
type ApproveEmailCmd struct {
	Email string `arg:"" help:"Email to approve"`
	Note  string `help:"Why the address was approved"`
}

func (c *ApproveEmailCmd) Run(g *Global, root *CLI) error {
	req := dto.ApprovedEmailRequest{Email: c.Email, Note: c.Note}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	b, err := openBackend(root.Verbose)
	if err != nil {
		return err
	}
	defer b.close()

	res, err := b.approvedEmails.Approve(context.Background(), &req)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "approved %s (%s)\n", res.Email, res.Id)
	return nil
}

// RevokeEmailCmd implements the 'revoke-email' command.
type RevokeEmailCmd struct {
	Email string `arg:"" help:"Email to revoke"`
}

func (c *RevokeEmailCmd) Run(g *Global, root *CLI) error {
	b, err := openBackend(root.Verbose)
	if err != nil {
		return err
	}
	defer b.close()

	if err := b.approvedEmails.RevokeByEmail(context.Background(), c.Email); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "revoked %s\n", c.Email)
	return nil
}

// CreateAdminCmd implements the 'create-admin' command. An existing account gets its password reset.
type CreateAdminCmd struct {
	Email    string `arg:"" help:"Login email"`
	Name     string `arg:"" help:"Full name"`
	Password string `required:"" env:"CMS_ADMIN_PASSWORD" help:"Password, at least 8 characters"`
	Approve  bool   `default:"true" negatable:"" help:"Also add the email to the allow-list"`
}

func (c *CreateAdminCmd) Run(g *Global, root *CLI) error {
	req := dto.CreateAdminRequest{Email: c.Email, FullName: c.Name, Password: c.Password}
	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	b, err := openBackend(root.Verbose)
	if err != nil {
		return err
	}
	defer b.close()

	ctx := context.Background()
	user, err := b.auth.CreateAdmin(ctx, &req)
	if err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "admin %s (%s) ready\n", user.Email, user.Id)

	if !c.Approve {
		return nil
	}
	approved, err := b.approvedEmails.IsApproved(ctx, user.Email)
	if err != nil {
		return err
	}
	if approved {
		return nil
	}
	if _, err := b.approvedEmails.Approve(ctx, &dto.ApprovedEmailRequest{Email: user.Email, Note: "created by cmsctl"}); err != nil {
		return err
	}
	fmt.Fprintf(g.Out, "approved %s\n", user.Email)
	return nil
}
