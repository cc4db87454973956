package db

// SubmissionsTable is the fully qualified target table for generated inserts
const SubmissionsTable = "public.submissions"

// Schema is the SQL schema for the submissions table, used when a sink is asked to create it.
// Foreign keys to rounds and users are left out so the table can stand alone.
const Schema = `
CREATE TABLE IF NOT EXISTS public.submissions (
    id BIGINT PRIMARY KEY,
    created_at TIMESTAMP DEFAULT now(),
    soundcloud_url TEXT NOT NULL,
    round_id BIGINT,
    additional_comments TEXT,
    user_id UUID
);
`
