// Copyright 2026 Wisdom Forms Ltd
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cobra"

	"github.com/wisdom-forms/forms-service/internal/identity"
	"github.com/wisdom-forms/forms-service/internal/types"
)

var userID string

var orgCmd = &cobra.Command{
	Use:   "org",
	Short: "Manage organizations",
}

func newAPIClient() *resty.Client {
	endpoint := httpEndpoint
	if !strings.HasPrefix(endpoint, "http") {
		endpoint = "http://" + endpoint
	}
	endpoint = strings.TrimSuffix(endpoint, "/")

	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(30 * time.Second)
	if userID != "" {
		client.SetHeader(identity.HeaderName, userID)
	}
	return client
}

func checkResponse(resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("api error (status %d): %s", resp.StatusCode(), strings.TrimSpace(string(resp.Body())))
	}
	return nil
}

var listOrgsCmd = &cobra.Command{
	Use:   "list",
	Short: "List organizations visible to the authenticated user",
	RunE: func(cmd *cobra.Command, args []string) error {
		var orgs []types.Organization
		resp, err := newAPIClient().R().
			SetResult(&orgs).
			Get("/api/v0/organizations")
		if err := checkResponse(resp, err); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSLUG\tCREATED_AT")
		for _, o := range orgs {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", o.ID, o.Name, o.Slug, o.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var createOrgCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug, _ := cmd.Flags().GetString("slug")

		var org types.Organization
		resp, err := newAPIClient().R().
			SetBody(map[string]string{"name": args[0], "slug": slug}).
			SetResult(&org).
			Post("/api/v0/organizations")
		if err := checkResponse(resp, err); err != nil {
			return err
		}

		fmt.Printf("Organization created: %s (ID: %s, slug: %s)\n", org.Name, org.ID, org.Slug)
		return nil
	},
}

var listMembersCmd = &cobra.Command{
	Use:   "members [org-id]",
	Short: "List members of an organization",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var members []types.OrgMember
		resp, err := newAPIClient().R().
			SetResult(&members).
			Get(fmt.Sprintf("/api/v0/organizations/%s/members", args[0]))
		if err := checkResponse(resp, err); err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tROLE\tSTATUS\tUSER_ID\tCREATED_AT")
		for _, m := range members {
			uid := ""
			if m.UserID != nil {
				uid = *m.UserID
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", m.Email, m.Role, m.Status, uid, m.CreatedAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var inviteMemberCmd = &cobra.Command{
	Use:   "invite [org-id] [email]",
	Short: "Invite a member to an organization",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		var out struct {
			Member       types.OrgMember `json:"member"`
			RecoveryLink string          `json:"recovery_link"`
		}
		resp, err := newAPIClient().R().
			SetBody(map[string]string{"email": args[1], "role": role}).
			SetResult(&out).
			Post(fmt.Sprintf("/api/v0/organizations/%s/members", args[0]))
		if err := checkResponse(resp, err); err != nil {
			return err
		}

		fmt.Printf("Member invited: %s (role: %s, status: %s)\n", out.Member.Email, out.Member.Role, out.Member.Status)
		if out.RecoveryLink != "" {
			fmt.Printf("Recovery link: %s\n", out.RecoveryLink)
		}
		return nil
	},
}

func init() {
	createOrgCmd.Flags().String("slug", "", "URL slug (derived from the name when empty)")
	inviteMemberCmd.Flags().String("role", types.OrgRoleUser, "Membership role (admin or user)")

	orgCmd.AddCommand(listOrgsCmd)
	orgCmd.AddCommand(createOrgCmd)
	orgCmd.AddCommand(listMembersCmd)
	orgCmd.AddCommand(inviteMemberCmd)

	orgCmd.PersistentFlags().StringVar(&userID, "user-id", "", "Authenticated identity ID to act as")

	rootCmd.AddCommand(orgCmd)
}
